package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"tilecollider/internal/autotile"
	"tilecollider/internal/collider"
	"tilecollider/internal/config"
	"tilecollider/internal/graphics"
	"tilecollider/internal/grid"
	"tilecollider/internal/mesh"
	"tilecollider/internal/physics"
	"tilecollider/internal/profiling"
	"tilecollider/internal/tilemap"
	"tilecollider/pkg/tileset"
)

func init() { runtime.LockOSThread() }

const (
	winW = 900
	winH = 600

	maxPickDistance = 100.0
)

var meshVertexShader = `#version 330 core
layout(location = 0) in vec3 aPos;
uniform mat4 view;
uniform mat4 proj;
out vec3 FragPos;
void main() {
	FragPos = aPos;
	gl_Position = proj * view * vec4(aPos, 1.0);
}
`

// Flat shading from screen-space derivatives; the collider mesh carries
// positions only.
var meshFragmentShader = `#version 330 core
in vec3 FragPos;
uniform vec3 color;
uniform vec3 lightDir;
out vec4 FragColor;
void main() {
	vec3 n = normalize(cross(dFdx(FragPos), dFdy(FragPos)));
	float diff = max(dot(n, -lightDir), 0.35);
	FragColor = vec4(color * diff, 1.0);
}
`

var simpleVertexShader = `#version 330 core
layout(location = 0) in vec3 aPos;
uniform mat4 model;
uniform mat4 view;
uniform mat4 proj;
void main() {
	gl_Position = proj * view * model * vec4(aPos, 1.0);
}
`

var simpleFragmentShader = `#version 330 core
uniform vec3 color;
out vec4 FragColor;
void main() {
	FragColor = vec4(color, 1.0);
}
`

// Unit cube edges spanning [0,1], matching the collider block footprint.
var cellWireframeVertices = []float32{
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1,
	1, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 0, 0,
	0, 1, 0, 1, 1, 0,
	1, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 1, 0,
	0, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, 0,
	1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1,
}

var crosshairVertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

var crosshairVertexShader = `#version 330 core
layout(location = 0) in vec2 aPos;
void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

var crosshairFragmentShader = `#version 330 core
out vec4 FragColor;
void main() {
	FragColor = vec4(1.0, 1.0, 1.0, 0.8);
}
`

func main() {
	mapPath := flag.String("map", "assets/maps/arena.tmx", "TMX map to load")
	tilesetDir := flag.String("tilesets", "assets/tilesets", "tileset asset directory")
	tilesetName := flag.String("tileset", "blob47", "tileset definition name")
	workers := flag.Int("workers", config.GetBakeWorkers(), "mesh bake workers")
	flag.Parse()

	config.SetBakeWorkers(*workers)

	g, err := tilemap.LoadGrid(os.DirFS("."), *mapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tileviewer: %v\n", err)
		os.Exit(1)
	}

	table := loadVariantTable(*tilesetDir, *tilesetName)
	resolver := autotile.NewResolver(table)

	// Initial variant pass over everything the map placed.
	initial := make([]grid.Cell, 0, g.TileCount())
	g.EachTile(func(c grid.Cell, _ grid.Tile) {
		initial = append(initial, c)
	})
	resolver.Apply(g, initial)

	// Keep variants current as tiles are edited.
	g.Subscribe(func(source *grid.Grid, cells []grid.Cell) {
		resolver.Apply(source, cells)
	})

	pool := mesh.NewBakePool(config.GetBakeWorkers())
	defer pool.Close()

	builder := collider.New(g, config.GetCellSize(), mgl32.Vec3{}, pool)
	builder.Attach(g)
	defer builder.Detach()
	builder.Refresh()

	run(g, builder)
}

// loadVariantTable loads the named tileset definition, falling back to the
// generated 47-mask blob table when the asset is missing.
func loadVariantTable(dir, name string) map[int]int {
	loader := tileset.NewLoader(dir)
	def, err := loader.Load(name)
	if err != nil {
		fmt.Printf("Warning: could not load tileset %q (%v), using generated blob table\n", name, err)
		return tileset.GenerateTable()
	}
	return def.Table()
}

func run(g *grid.Grid, builder *collider.Builder) {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winW, winH, "tileviewer", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		panic(err)
	}

	meshShader, err := graphics.NewShader(meshVertexShader, meshFragmentShader)
	if err != nil {
		panic(err)
	}
	simpleShader, err := graphics.NewShader(simpleVertexShader, simpleFragmentShader)
	if err != nil {
		panic(err)
	}
	crosshairShader, err := graphics.NewShader(crosshairVertexShader, crosshairFragmentShader)
	if err != nil {
		panic(err)
	}
	overlay, err := graphics.NewOverlay(winW, winH)
	if err != nil {
		panic(err)
	}

	// Collider mesh VAO: positions only, indexed triangles.
	var meshVAO, meshVBO, meshEBO uint32
	gl.GenVertexArrays(1, &meshVAO)
	gl.BindVertexArray(meshVAO)
	gl.GenBuffers(1, &meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, meshVBO)
	gl.GenBuffers(1, &meshEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, meshEBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	// Hover wireframe VAO.
	var wireVAO, wireVBO uint32
	gl.GenVertexArrays(1, &wireVAO)
	gl.BindVertexArray(wireVAO)
	gl.GenBuffers(1, &wireVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, wireVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cellWireframeVertices)*4, gl.Ptr(cellWireframeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	// Crosshair VAO.
	var crossVAO, crossVBO uint32
	gl.GenVertexArrays(1, &crossVAO)
	gl.BindVertexArray(crossVAO)
	gl.GenBuffers(1, &crossVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, crossVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(crosshairVertices)*4, gl.Ptr(crosshairVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	min, max := g.Bounds()
	center := mgl32.Vec3{
		float32(min.X+max.X) / 2,
		float32(min.Y+max.Y) / 2,
		float32(min.Z+max.Z) / 2,
	}
	camera := graphics.NewCamera(winW, winH, center)

	lastX := float64(winW) / 2
	lastY := float64(winH) / 2
	firstMouse := true
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
		}
		dx := float32(xpos-lastX) * 0.1
		dy := float32(lastY-ypos) * 0.1
		lastX = xpos
		lastY = ypos
		camera.Rotate(dx, dy)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		camera.Zoom(float32(yoff))
	})

	var hoveredCell grid.Cell
	var placeCell grid.Cell
	var hasHovered bool

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press || !hasHovered {
			return
		}
		if button == glfw.MouseButtonLeft {
			// Erase the hovered tile; the change notification drives the
			// incremental collider update.
			g.Set(hoveredCell, grid.Tile{})
		}
		if button == glfw.MouseButtonRight {
			t, ok := g.Tile(hoveredCell)
			if !ok {
				t = grid.Tile{ID: 1, Solid: true}
			}
			g.Set(placeCell, grid.Tile{ID: t.ID, Solid: true})
		}
	})

	var uploadedVersion uint64
	var indexCount int32
	lastOverlay := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()

		// Pick through the crosshair.
		res := physics.Raycast(camera.Eye(), camera.Front(), maxPickDistance, g.ColliderPresent)
		hasHovered = res.Hit
		if res.Hit {
			hoveredCell = res.HitCell
			placeCell = res.AdjacentCell
		}

		// Re-upload collider geometry when a rebuild changed it.
		m := builder.Mesh()
		if m.Version() != uploadedVersion {
			uploadedVersion = m.Version()
			indexCount = int32(len(m.Indices))
			if indexCount > 0 {
				gl.BindVertexArray(meshVAO)
				gl.BindBuffer(gl.ARRAY_BUFFER, meshVBO)
				gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*3*4, gl.Ptr(m.Vertices), gl.DYNAMIC_DRAW)
				gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, meshEBO)
				gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.DYNAMIC_DRAW)
			}
		}

		gl.ClearColor(0.53, 0.81, 0.92, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		proj := camera.GetProjectionMatrix()
		view := camera.GetViewMatrix()

		if indexCount > 0 {
			meshShader.Use()
			meshShader.SetMatrix4("proj", &proj[0])
			meshShader.SetMatrix4("view", &view[0])
			light := mgl32.Vec3{0.5, 1.0, 0.3}.Normalize()
			meshShader.SetVector3("lightDir", light.X(), light.Y(), light.Z())
			meshShader.SetVector3("color", 0.3, 0.9, 0.3)

			gl.BindVertexArray(meshVAO)
			gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		}

		if hasHovered {
			simpleShader.Use()
			simpleShader.SetMatrix4("proj", &proj[0])
			simpleShader.SetMatrix4("view", &view[0])
			model := mgl32.Translate3D(
				float32(hoveredCell.X)-0.005,
				float32(hoveredCell.Y)-0.005,
				float32(hoveredCell.Z)-0.005,
			).Mul4(mgl32.Scale3D(1.01, 1.01, 1.01))
			simpleShader.SetMatrix4("model", &model[0])
			simpleShader.SetVector3("color", 0, 0, 0)

			gl.BindVertexArray(wireVAO)
			gl.LineWidth(2.0)
			gl.DrawArrays(gl.LINES, 0, int32(len(cellWireframeVertices)/3))
		}

		crosshairShader.Use()
		gl.BindVertexArray(crossVAO)
		gl.LineWidth(2.0)
		gl.DrawArrays(gl.LINES, 0, 4)

		if time.Since(lastOverlay) > 250*time.Millisecond {
			lastOverlay = time.Now()
			overlay.SetLines([]string{
				fmt.Sprintf("blocks: %d  verts: %d  tris: %d",
					builder.BlockCount(), len(m.Vertices), len(m.Indices)/3),
				fmt.Sprintf("bakes: %d", profiling.Counter("mesh.bakes")),
				profiling.TopN(3),
			})
		}
		overlay.Render()

		window.SwapBuffers()
		glfw.PollEvents()

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
	}
}
