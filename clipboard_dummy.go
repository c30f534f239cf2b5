// golang.design/x/clipboard panics on unsupported platforms even
// though Init returns an error, so those builds get stubs instead

//go:build js || (!windows && !cgo)

package main

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	InfoLogger.Print("initializing clipboard")
	ErrorLogger.Printf("clipboard is disabled")
}

func ClipboardWriteText(str string) {
}

func ClipboardReadText() string {
	return ""
}
