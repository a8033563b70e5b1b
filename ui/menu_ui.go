package ui

import (
	"image/color"

	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuUI is the start menu.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay     func()
	OnContinue func()
	OnQuit     func()

	continueButton *widget.Button
	statusLabel    *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI builds the menu. canContinue enables the Continue button.
func NewMenuUI(canContinue bool, onPlay, onContinue, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnPlay:     onPlay,
		OnContinue: onContinue,
		OnQuit:     onQuit,
		titleFace:  fonts.Title.UIFace(),
		normalFace: fonts.HUD.UIFace(),
	}
	mui.buildUI()
	mui.continueButton.GetWidget().Disabled = !canContinue
	return mui
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 24, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	contentContainer.AddChild(mui.button("Play", func() { mui.OnPlay() }))
	mui.continueButton = mui.button("Continue", func() { mui.OnContinue() })
	contentContainer.AddChild(mui.continueButton)
	contentContainer.AddChild(mui.button("Quit", func() { mui.OnQuit() }))

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.normalFace, &widget.LabelColor{
			Idle: cfg.Gold,
		}),
	)
	contentContainer.AddChild(mui.statusLabel)

	rootContainer.AddChild(contentContainer)
	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 36),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetStatus shows a line under the buttons.
func (mui *MenuUI) SetStatus(s string) {
	mui.statusLabel.Label = s
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
