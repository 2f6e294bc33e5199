package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/lumenfx/lumen/config"
)

// MenuUI is the ebitenui nav/settings overlay. The scene owns it and only
// updates/draws it while the menu is open.
type MenuUI struct {
	UI       *ebitenui.UI
	Settings *cfg.SavedSettings

	// Callbacks
	OnNavigate func(target float64)
	OnApply    func()
	OnClose    func()

	particlesButton *widget.Button
	motionButton    *widget.Button
	densityButton   *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI builds the overlay. onNavigate receives the page offset of the
// chosen section; onApply persists and re-applies the settings.
func NewMenuUI(settings *cfg.SavedSettings, onNavigate func(float64), onApply, onClose func()) *MenuUI {
	mui := &MenuUI{
		Settings:   settings,
		OnNavigate: onNavigate,
		OnApply:    onApply,
		OnClose:    onClose,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{14, 17, 30, 250})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("LUMEN", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{235, 238, 245, 255},
		}),
	)
	panel.AddChild(titleLabel)

	// Nav links jump the scroll target to their section
	links := []struct {
		label  string
		target float64
	}{
		{"Top", 0},
		{"Work", 560},
		{"Studio", 1320},
	}
	for _, link := range links {
		target := link.target
		panel.AddChild(mui.textButton(link.label, func() {
			if mui.OnNavigate != nil {
				mui.OnNavigate(target)
			}
			if mui.OnClose != nil {
				mui.OnClose()
			}
		}))
	}

	// Settings toggles
	mui.particlesButton = mui.textButton(mui.particlesLabel(), func() {
		mui.Settings.Particles = !mui.Settings.Particles
		mui.applyAndRefresh()
	})
	panel.AddChild(mui.particlesButton)

	mui.motionButton = mui.textButton(mui.motionLabel(), func() {
		mui.Settings.ReducedMotion = !mui.Settings.ReducedMotion
		mui.applyAndRefresh()
	})
	panel.AddChild(mui.motionButton)

	mui.densityButton = mui.textButton(mui.densityLabel(), func() {
		mui.Settings.Density = nextDensity(mui.Settings.Density)
		mui.applyAndRefresh()
	})
	panel.AddChild(mui.densityButton)

	panel.AddChild(mui.textButton("Close", func() {
		if mui.OnClose != nil {
			mui.OnClose()
		}
	}))

	rootContainer.AddChild(panel)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) textButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 30),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{235, 238, 245, 255},
			Hover:   color.RGBA{170, 215, 255, 255},
			Pressed: color.RGBA{120, 200, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{24, 29, 48, 255})
	hover := image.NewNineSliceColor(color.RGBA{34, 41, 66, 255})
	pressed := image.NewNineSliceColor(color.RGBA{18, 22, 38, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (mui *MenuUI) applyAndRefresh() {
	if mui.OnApply != nil {
		mui.OnApply()
	}
	mui.refreshLabels()
}

func (mui *MenuUI) refreshLabels() {
	if textWidget := mui.particlesButton.Text(); textWidget != nil {
		textWidget.Label = mui.particlesLabel()
	}
	if textWidget := mui.motionButton.Text(); textWidget != nil {
		textWidget.Label = mui.motionLabel()
	}
	if textWidget := mui.densityButton.Text(); textWidget != nil {
		textWidget.Label = mui.densityLabel()
	}
}

func (mui *MenuUI) particlesLabel() string {
	if mui.Settings.Particles {
		return "Particles: On"
	}
	return "Particles: Off"
}

func (mui *MenuUI) motionLabel() string {
	if mui.Settings.ReducedMotion {
		return "Reduced motion: On"
	}
	return "Reduced motion: Off"
}

func (mui *MenuUI) densityLabel() string {
	return fmt.Sprintf("Density: %.0f%%", mui.Settings.Density*100)
}

func nextDensity(current float64) float64 {
	for i, step := range cfg.DensitySteps {
		if step == current {
			return cfg.DensitySteps[(i+1)%len(cfg.DensitySteps)]
		}
	}
	return cfg.DensitySteps[len(cfg.DensitySteps)-1]
}

// Update advances the ebitenui widget tree one frame.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

// Draw renders the overlay panel.
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
