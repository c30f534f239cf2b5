package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"runtime/pprof"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	_ "github.com/silbinarywolf/preferdiscretegpu"
)

var ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

// set by build tag gated init functions
var (
	ScreenshotEnabled = false
	PprofEnabled      = false
	ForceAlwaysDraw   = false
)

var (
	FlagSeed    = flag.String("seed", "", "start with a fixed round seed (16 hex digits)")
	FlagColors  = flag.String("colors", "", "load color table from json file")
	FlagMute    = flag.Bool("mute", false, "start muted")
	FlagCpuProf = flag.String("pprof", "", "write cpu profile to file")
)

type App struct {
	Game *Game

	ShowDebugConsole bool

	muted bool

	copyToast  Timer
	frameTimes CircularQueue[time.Duration]

	// frames left to draw after the scene went static
	forceRedraws int

	lastOutW, lastOutH int
}

func NewApp(seed uint64) *App {
	a := new(App)

	a.Game = NewGame(seed)
	a.Game.QuoteSize = ImageSizeFPt(TheQuoteImage)

	a.Game.OnSlide = func() { a.playSound(SoundSlide, 0.45) }
	a.Game.OnReject = func() { a.playSound(SoundReject, 0.5) }
	a.Game.OnRound = func() { a.playSound(SoundDeal, 0.5) }
	a.Game.OnWin = func() { a.playSound(SoundWin, 0.65) }

	a.copyToast = Timer{Duration: time.Millisecond * 1500, Current: Years150}
	a.frameTimes = NewCircularQueue[time.Duration](60)

	a.forceRedraws = 2

	return a
}

func (a *App) playSound(sound string, volume float64) {
	if a.muted {
		return
	}
	PlaySoundBytes(sound, volume)
}

func (a *App) Update() error {
	ClearDebugMsgs()
	UpdateGlobalTimer()
	UpdateSound()

	a.copyToast.TickUp()

	a.frameTimes.Enqueue(UpdateDelta())

	PollKeys(&a.Game.Keyboard)

	if inpututil.IsKeyJustPressed(NewRoundKey) {
		a.Game.NewRound(NewSeed())
		a.forceRedraws = 2
	}
	if inpututil.IsKeyJustPressed(ReplayRoundKey) {
		a.Game.NewRound(a.Game.Seed())
		a.forceRedraws = 2
	}
	if inpututil.IsKeyJustPressed(CopySeedKey) {
		seedStr := SeedToString(a.Game.Seed())
		ClipboardWriteText(seedStr)
		InfoLogger.Printf("seed %s copied", seedStr)
		a.copyToast.Current = 0
	}
	if inpututil.IsKeyJustPressed(PasteSeedKey) {
		if seed, err := SeedFromString(ClipboardReadText()); err == nil {
			a.Game.NewRound(seed)
			a.forceRedraws = 2
		} else {
			InfoLogger.Print("clipboard has no seed to paste")
		}
	}
	if inpututil.IsKeyJustPressed(ToggleMuteKey) {
		a.muted = !a.muted
		if a.muted {
			SetGlobalVolume(0)
		} else {
			SetGlobalVolume(1)
		}
	}
	if inpututil.IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
		a.forceRedraws = 2
	}
	if inpututil.IsKeyJustPressed(DumpColorTableKey) {
		if err := SaveColorTable("colors.json"); err != nil {
			ErrorLogger.Printf("failed to save color table: %v", err)
		} else {
			InfoLogger.Print("saved color table to colors.json")
		}
	}
	if DevBuild && inpututil.IsKeyJustPressed(InstantSolveKey) {
		a.Game.SolveNow()
		a.forceRedraws = 2
	}
	if ScreenshotEnabled && inpututil.IsKeyJustPressed(ScreenshotKey) {
		RequestScreenshot()
	}

	a.Game.Step(GlobalTimerNow())

	DebugPuts("phase", a.Game.Phase().String())
	DebugPuts("seed", SeedToString(a.Game.Seed()))
	DebugPuts("avg delta", fmt.Sprintf("%.2fms", a.avgFrameMs()))

	eb.SetWindowTitle(a.windowTitle())

	return nil
}

func (a *App) avgFrameMs() float64 {
	if a.frameTimes.Length <= 0 {
		return 0
	}

	var sum time.Duration
	for i := 0; i < a.frameTimes.Length; i++ {
		sum += a.frameTimes.At(i)
	}

	avg := sum / time.Duration(a.frameTimes.Length)
	return f64(avg) / f64(time.Millisecond)
}

func (a *App) windowTitle() string {
	title := "Picture Puzzle"

	if a.copyToast.Normalize() < 1 {
		title += " - seed copied!"
	}
	if a.muted {
		title += " (muted)"
	}
	if DevBuild {
		title += fmt.Sprintf(" [%.1ffps]", eb.ActualFPS())
	}

	return title
}

// sceneStatic reports whether the frame would be identical to the
// previous one.
func (a *App) sceneStatic() bool {
	switch a.Game.Phase() {
	case PhaseSliding, PhaseFadingWin, PhaseFadingQuote:
		return false
	}

	if len(a.Game.Particles()) > 0 {
		return false
	}
	if a.ShowDebugConsole {
		return false
	}

	return true
}

func (a *App) Draw(dst *eb.Image) {
	if !ForceAlwaysDraw && a.sceneStatic() && a.forceRedraws <= 0 {
		return
	}
	if a.forceRedraws > 0 {
		a.forceRedraws--
	}

	dst.Fill(ColorTable[ColorBg])

	DrawGame(dst, a.Game)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}

	if ScreenshotEnabled {
		TakeScreenshot(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.lastOutW || outsideHeight != a.lastOutH {
		a.lastOutW, a.lastOutH = outsideWidth, outsideHeight
		a.forceRedraws = 2
	}

	return ScreenWidth, ScreenHeight
}

func main() {
	flag.Parse()

	if *FlagCpuProf != "" && !PprofEnabled {
		f, err := os.Create(*FlagCpuProf)
		if err != nil {
			ErrorLogger.Fatalf("failed to create profile file: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			ErrorLogger.Fatalf("failed to start cpu profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	seed := NewSeed()
	if *FlagSeed != "" {
		parsed, err := SeedFromString(*FlagSeed)
		if err != nil {
			ErrorLogger.Fatalf("bad seed %q: %v", *FlagSeed, err)
		}
		seed = parsed
	}

	InitClipboardManager()
	LoadAssets()
	InitSound()

	if *FlagColors != "" {
		if err := LoadColorTable(*FlagColors); err != nil {
			ErrorLogger.Fatalf("failed to load color table: %v", err)
		}
	}

	// images bake the color table in, so the table loads first
	InitImages()

	app := NewApp(seed)

	if *FlagMute {
		app.muted = true
		SetGlobalVolume(0)
	}

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(ScreenWidth*2, ScreenHeight*2)
	eb.SetWindowTitle("Picture Puzzle")
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetScreenClearedEveryFrame(false)
	eb.SetWindowIcon([]image.Image{TheWindowIcon})

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
