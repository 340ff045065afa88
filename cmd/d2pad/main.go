package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/d2pad/d2pad/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.d2pad.app")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon := ui.AppIconResource(); icon != nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow("D2Pad")
	myWindow.Resize(fyne.NewSize(ui.WindowDefaultWidth, ui.WindowDefaultHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp)

	// Show and run
	myWindow.ShowAndRun()
}
