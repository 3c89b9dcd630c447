package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/gene/engine"
	"github.com/adinfit/gene/geometry"
	"github.com/adinfit/gene/render"
	"github.com/adinfit/gene/render/glcore"
	"github.com/adinfit/gene/settings"
	"github.com/adinfit/gene/window"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "profile")

	settingsPath = flag.String("settings", "res/configurations/settings", "settings file")
	texturePath  = flag.String("texture", "", "image drawn on the model")
	meshName     = flag.String("mesh", "quad", "model to draw: quad or fish")
	verbose      = flag.Bool("verbose", false, "log key events")

	width  = flag.Int("width", 0, "window width, overrides settings")
	height = flag.Int("height", 0, "window height, overrides settings")
	ups    = flag.Int("ups", 0, "updates per second, overrides settings")
)

func init() { runtime.LockOSThread() }

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("unable to create cpu-profile %q: %v", *cpuprofile, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("unable to start cpu-profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		pprof.StopCPUProfile()
		log.Fatalln(err)
	}
}

func run() error {
	config, err := settings.Load(*settingsPath)
	if err != nil {
		log.Println("settings:", err)
	}
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}
	if *ups > 0 {
		config.UpdatesPerSecond = *ups
	}

	platform, err := window.Init()
	if err != nil {
		return err
	}

	options := engine.Options{
		Width:        config.Width,
		Height:       config.Height,
		Title:        config.Title,
		Fullscreen:   config.Fullscreen,
		TickInterval: time.Second / time.Duration(config.UpdatesPerSecond),
	}
	if *verbose {
		options.OnUpdate = logKeys
	}

	return engine.New(platform, setup, options).Run()
}

func setup(win engine.Window) (*engine.Resources, error) {
	gl, err := glcore.Init()
	if err != nil {
		return nil, err
	}
	log.Println("OpenGL version", gl.Version())

	loader := render.NewLoader(gl)
	res := &engine.Resources{Loader: loader}

	mesh, err := buildMesh(*meshName)
	if err != nil {
		return res, err
	}

	textured := *texturePath != ""
	model, err := loader.Load(mesh.Geometry(textured))
	if err != nil {
		return res, err
	}

	var variant render.Variant = render.StaticShader{}
	if textured {
		dir, name := filepath.Split(*texturePath)
		if dir == "" {
			dir = "."
		}
		texture, err := loader.LoadTexture(os.DirFS(dir), name)
		if err != nil {
			return res, err
		}
		model = model.WithTexture(texture)

		camera := render.NewCamera()
		camera.UpdateScreenSize(win.FramebufferSize())
		variant = render.TexturedShader{Camera: camera}
	}

	program, err := render.NewProgram(gl, render.Shaders, variant)
	if err != nil {
		return res, err
	}

	res.Program = program
	res.Renderer = render.NewRenderer(gl, render.DefaultClearColor)
	res.Model = model
	return res, nil
}

func buildMesh(name string) (geometry.MeshData, error) {
	switch name {
	case "quad":
		return geometry.Quad(1), nil
	case "fish":
		mesh := geometry.Fish()
		mesh.Transform(m.Scale3D(0.3, 0.3, 0.3).Mul4(m.HomogRotate3DY(math.Pi / 2)))
		return mesh, nil
	}
	return geometry.MeshData{}, fmt.Errorf("unknown mesh %q", name)
}

func logKeys(poll engine.PollResult) {
	for _, key := range poll.Keys {
		log.Printf("key %d (scancode %d) %v", key.Key, key.Scancode, key.Action)
	}
}
