package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer every entity is created on.
const Default ecs.LayerID = iota
