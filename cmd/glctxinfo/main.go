// Command glctxinfo creates a rendering context and prints its
// generation, granted attributes and capability surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/glcontext"
	"github.com/gogpu/glcontext/glfwsurface"
)

func init() {
	// Context creation must happen on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		surfaceName = flag.String("surface", "", "surface backend to use (default: best available)")
		power       = flag.String("power", "default", "power preference: default, high-performance, low-power")
		antialias   = flag.Bool("antialias", false, "request multisampled antialiasing")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		glcontext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		glcontext.SetLogger(slog.Default())
	}

	surface, err := newSurface(*surfaceName)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	sys := glcontext.New(surface, nil)
	err = sys.Init(
		glcontext.WithPowerPreference(glcontext.PowerPreference(*power)),
		glcontext.WithAntialias(*antialias),
	)
	if err != nil {
		log.Fatalf("Failed to initialize context: %v", err)
	}
	defer sys.Teardown()

	printInfo(sys)
}

func newSurface(name string) (glcontext.Surface, error) {
	if name != "" {
		return glcontext.NewSurfaceByName(name)
	}
	return glcontext.NewSurface()
}

func printInfo(sys *glcontext.System) {
	fmt.Printf("generation:       %d\n", sys.Generation())
	fmt.Printf("state:            %s\n", sys.State())
	fmt.Printf("lost:             %v\n", sys.IsLost())

	attrs := sys.GL().Attributes()
	fmt.Printf("alpha:            %v\n", attrs.Alpha)
	fmt.Printf("antialias:        %v\n", attrs.Antialias)
	fmt.Printf("stencil:          %v\n", attrs.Stencil)

	caps := sys.Capabilities()
	fmt.Printf("32-bit indices:   %v\n", caps.Uint32Indices)

	exts := sys.Extensions()
	fmt.Printf("anisotropic:      %v\n", exts.AnisotropicFiltering != nil)
	if af, ok := exts.AnisotropicFiltering.(*glfwsurface.AnisotropicFiltering); ok {
		fmt.Printf("  max anisotropy: %g\n", af.MaxAnisotropy)
	}
	fmt.Printf("float linear:     %v\n", exts.FloatTextureLinear != nil)
	fmt.Printf("float color buf:  %v\n", exts.ColorBufferFloat != nil)
	fmt.Printf("s3tc:             %v\n", exts.S3TC != nil)
	fmt.Printf("etc1:             %v\n", exts.ETC1 != nil)
	fmt.Printf("pvrtc:            %v\n", exts.PVRTC != nil)
	fmt.Printf("astc:             %v\n", exts.ASTC != nil)
}
