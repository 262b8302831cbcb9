package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI is the control bar under the table: pause, theme and paddle color.
type ControlsUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	pauseButton *widget.Button
	themeButton *widget.Button
	colorButton *widget.Button
	statusLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewControlsUI creates the control bar for the table simulated by e.
func NewControlsUI(e *ecs.ECS) (*ControlsUI, error) {
	cui := &ControlsUI{ecs: e}
	if err := cui.loadFonts(); err != nil {
		return nil, err
	}
	cui.buildUI()
	return cui, nil
}

func (cui *ControlsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load control bar font: %w", err)
	}

	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	cui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	return nil
}

func (cui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	barHeight := cfg.C.Height - int(cfg.Table.Height)
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.ControlBarFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, barHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				VerticalPosition:  widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	cui.pauseButton = cui.newButton("Pause", 80, func() {
		systems.TogglePause(cui.ecs)
	})
	bar.AddChild(cui.pauseButton)

	cui.themeButton = cui.newButton("Dark Mode", 110, func() {
		systems.ToggleTheme(cui.ecs)
	})
	bar.AddChild(cui.themeButton)

	cui.colorButton = cui.newButton("Paddle: Red", 130, func() {
		systems.CyclePaddleColor(cui.ecs)
	})
	bar.AddChild(cui.colorButton)

	cui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	bar.AddChild(cui.statusLabel)

	rootContainer.AddChild(bar)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) newButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 26),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			cui.UpdateUI()
		}),
	)
}

func (cui *ControlsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes button labels from the simulation state.
func (cui *ControlsUI) UpdateUI() {
	snap := systems.Snapshot(cui.ecs)
	labels := Labels(snap)

	setButtonLabel(cui.pauseButton, labels.Pause)
	setButtonLabel(cui.themeButton, labels.Theme)
	setButtonLabel(cui.colorButton, labels.Color)
	if cui.statusLabel != nil {
		cui.statusLabel.Label = labels.Status
	}
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

// Update runs the ebitenui event loop and refreshes labels.
func (cui *ControlsUI) Update() {
	cui.UI.Update()
	// Labels are only safe to touch once the widgets are validated
	if !cui.initialized {
		cui.initialized = true
		return
	}
	cui.UpdateUI()
}

// BarLabels are the texts shown on the control bar.
type BarLabels struct {
	Pause  string
	Theme  string
	Color  string
	Status string
}

// Labels derives the control bar texts from a snapshot. The pause button
// names the action it performs, and the theme button names the other theme.
func Labels(snap systems.TableSnapshot) BarLabels {
	l := BarLabels{
		Pause: "Pause",
		Theme: "Dark Mode",
		Color: "Paddle: Red",
	}
	if snap.Paused {
		l.Pause = "Play"
	}
	if snap.Theme == cfg.ThemeDark {
		l.Theme = "Light Mode"
	}

	if id := snap.PaddleColor; id != "" {
		l.Color = "Paddle: " + strings.ToUpper(id[:1]) + id[1:]
	}
	l.Status = fmt.Sprintf("First to %d", cfg.Round.WinScore)
	return l
}
