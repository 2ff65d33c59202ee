//go:build android

package client

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/sensor"
	"golang.org/x/mobile/gl"

	"tiltsnake/internal/game"
	"tiltsnake/internal/scene"
)

// SensorDelay is the requested accelerometer sampling period.
const SensorDelay = 20 * time.Millisecond

const spriteVertSrcMobile = `
attribute vec2 aWorldPos;
attribute float aSize;
attribute vec4 aColor;
attribute float aRotation;
uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;
varying vec4 vColor;
varying float vRotation;
void main() {
  vec2 screenPos = (aWorldPos - uCamera) * uZoom + uResolution * 0.5;
  vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
  ndc.y = -ndc.y;
  gl_Position = vec4(ndc, 0.0, 1.0);
  gl_PointSize = max(1.0, floor(aSize * uZoom + 0.5));
  vColor = aColor;
  vRotation = aRotation;
}`

const flatFragSrcMobile = `
precision mediump float;
varying vec4 vColor;
varying float vRotation;
void main() {
  float keep = vRotation * 0.0;
  gl_FragColor = vec4(vColor.rgb, vColor.a + keep);
}`

const glowFragSrcMobile = `
precision mediump float;
varying vec4 vColor;
varying float vRotation;
void main() {
  float keep = vRotation * 0.0;
  float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
  float falloff = clamp(1.0 - dist, 0.0, 1.0);
  gl_FragColor = vec4(vColor.rgb * falloff * falloff, 1.0 + keep);
}`

const boxFragSrcMobile = `
precision mediump float;
varying vec4 vColor;
varying float vRotation;
void main() {
  vec2 uv = gl_PointCoord - vec2(0.5);
  float c = cos(vRotation);
  float s = sin(vRotation);
  vec2 rot = vec2(c * uv.x - s * uv.y, s * uv.x + c * uv.y);
  float ax = abs(rot.x);
  float ay = abs(rot.y);
  if (ax > 0.36 || ay > 0.36) discard;
  vec3 col = vColor.rgb;
  if (ax > 0.29 || ay > 0.29) {
    col *= 0.35;
  }
  gl_FragColor = vec4(col, vColor.a);
}`

// mobileProgram mirrors the desktop spriteProgram for a GLES context.
type mobileProgram struct {
	prog        gl.Program
	aPos        gl.Attrib
	aSize       gl.Attrib
	aColor      gl.Attrib
	aRot        gl.Attrib
	uCamera     gl.Uniform
	uZoom       gl.Uniform
	uResolution gl.Uniform
}

type mobileGame struct {
	cfg     game.Config
	session *game.Session
	audio   *Audio

	tilt game.Vec2 // latest accelerometer steering, zero when level

	snap  *game.Snapshot
	frame scene.Frame

	flat, box, glow mobileProgram
	vbo             gl.Buffer
	glReady         bool
	fbWidth         int
	fbHeight        int
}

func (g *mobileGame) Poll() game.Input {
	return game.Input{Steer: g.tilt}
}

func (g *mobileGame) handleSensor(e sensor.Event) {
	if e.Sensor != sensor.Accelerometer || len(e.Data) < 3 {
		return
	}
	g.tilt = game.TiltSteering(game.TiltFromGravity(e.Data[0], e.Data[1], e.Data[2]))
}

// handleTouch starts or restarts a session on tap. Steering is tilt only.
func (g *mobileGame) handleTouch(e touch.Event) {
	if e.Type != touch.TypeBegin {
		return
	}
	if g.session.State != game.StateRunning {
		g.session.Restart()
	}
}

func (g *mobileGame) step(dt float64) {
	if g.session.State == game.StateRunning {
		g.session.Tick(game.PollInputs(g), dt)
	}
	g.snap = g.session.Snapshot(g.snap)
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShaderMobile(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		msg := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", msg)
	}
	return sh, nil
}

func newMobileProgram(glctx gl.Context, fragSrc string) (mobileProgram, error) {
	vs, err := compileShaderMobile(glctx, gl.VERTEX_SHADER, spriteVertSrcMobile)
	if err != nil {
		return mobileProgram{}, err
	}
	fs, err := compileShaderMobile(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return mobileProgram{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		msg := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return mobileProgram{}, fmt.Errorf("program link failed: %s", msg)
	}
	return mobileProgram{
		prog:        prog,
		aPos:        glctx.GetAttribLocation(prog, "aWorldPos"),
		aSize:       glctx.GetAttribLocation(prog, "aSize"),
		aColor:      glctx.GetAttribLocation(prog, "aColor"),
		aRot:        glctx.GetAttribLocation(prog, "aRotation"),
		uCamera:     glctx.GetUniformLocation(prog, "uCamera"),
		uZoom:       glctx.GetUniformLocation(prog, "uZoom"),
		uResolution: glctx.GetUniformLocation(prog, "uResolution"),
	}, nil
}

func (g *mobileGame) initGL(glctx gl.Context) error {
	if g.glReady {
		return nil
	}
	var err error
	if g.flat, err = newMobileProgram(glctx, flatFragSrcMobile); err != nil {
		return fmt.Errorf("flat program: %w", err)
	}
	if g.box, err = newMobileProgram(glctx, boxFragSrcMobile); err != nil {
		return fmt.Errorf("box program: %w", err)
	}
	if g.glow, err = newMobileProgram(glctx, glowFragSrcMobile); err != nil {
		return fmt.Errorf("glow program: %w", err)
	}
	g.vbo = glctx.CreateBuffer()
	g.glReady = true
	return nil
}

func (g *mobileGame) destroyGL(glctx gl.Context) {
	if !g.glReady {
		return
	}
	glctx.DeleteBuffer(g.vbo)
	for _, p := range []mobileProgram{g.flat, g.box, g.glow} {
		glctx.DeleteProgram(p.prog)
	}
	g.glReady = false
}

func (g *mobileGame) drawSprites(glctx gl.Context, p mobileProgram, buf []float32, cam scene.Camera, additive bool) {
	if len(buf) == 0 {
		return
	}
	const stride = scene.SpriteStride * 4
	glctx.UseProgram(p.prog)
	glctx.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(buf), gl.STREAM_DRAW)
	glctx.EnableVertexAttribArray(p.aPos)
	glctx.EnableVertexAttribArray(p.aSize)
	glctx.EnableVertexAttribArray(p.aColor)
	glctx.EnableVertexAttribArray(p.aRot)
	glctx.VertexAttribPointer(p.aPos, 2, gl.FLOAT, false, stride, 0)
	glctx.VertexAttribPointer(p.aSize, 1, gl.FLOAT, false, stride, 8)
	glctx.VertexAttribPointer(p.aColor, 4, gl.FLOAT, false, stride, 12)
	glctx.VertexAttribPointer(p.aRot, 1, gl.FLOAT, false, stride, 28)
	glctx.Uniform2f(p.uCamera, float32(cam.X), float32(cam.Y))
	glctx.Uniform1f(p.uZoom, float32(cam.Zoom))
	glctx.Uniform2f(p.uResolution, float32(g.fbWidth), float32(g.fbHeight))
	glctx.Enable(gl.BLEND)
	if additive {
		glctx.BlendFunc(gl.ONE, gl.ONE)
	} else {
		glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	glctx.DrawArrays(gl.POINTS, 0, len(buf)/scene.SpriteStride)
	glctx.Disable(gl.BLEND)
}

func (g *mobileGame) drawGL(glctx gl.Context, now float64) {
	if !g.glReady || g.fbWidth <= 0 || g.fbHeight <= 0 {
		return
	}
	r, gg, b := scene.Palette.Backdrop.Floats()
	glctx.Viewport(0, 0, g.fbWidth, g.fbHeight)
	glctx.ClearColor(r, gg, b, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	g.frame.Build(g.snap, g.cfg, now)
	cam := scene.Fit(g.cfg, g.fbWidth, g.fbHeight)
	g.drawSprites(glctx, g.flat, g.frame.Floor, cam, false)
	g.drawSprites(glctx, g.flat, g.frame.Shadow, cam, false)
	g.drawSprites(glctx, g.glow, g.frame.Glow, cam, true)
	g.drawSprites(glctx, g.box, g.frame.Boxes, cam, false)
}

// Run hosts the game in a gomobile activity. Tilting the device steers and a
// tap starts or restarts a session.
func Run(cfg game.Config, seed uint64) error {
	session, err := game.NewSession(cfg, seed)
	if err != nil {
		return err
	}
	g := &mobileGame{cfg: cfg, session: session}
	g.audio, err = NewAudio()
	if err != nil {
		log.Printf("audio init failed (continuing without sound): %v", err)
	}
	g.audio.Attach(session.Events)

	app.Main(func(a app.App) {
		var glctx gl.Context
		var last time.Time
		start := time.Now()
		sensor.Notify(a)

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := g.initGL(glctx); err != nil {
						panic(err)
					}
					if err := sensor.Enable(sensor.Accelerometer, SensorDelay); err != nil {
						log.Printf("accelerometer unavailable: %v", err)
					}
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					sensor.Disable(sensor.Accelerometer)
					g.tilt = game.Vec2{}
					if glctx != nil {
						g.destroyGL(glctx)
						glctx = nil
					}
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				g.fbWidth = e.WidthPx
				g.fbHeight = e.HeightPx

			case touch.Event:
				g.handleTouch(e)

			case sensor.Event:
				g.handleSensor(e)

			case paint.Event:
				if glctx == nil || g.fbWidth <= 0 || g.fbHeight <= 0 {
					continue
				}
				now := time.Now()
				dt := now.Sub(last).Seconds()
				last = now
				g.step(dt)
				g.drawGL(glctx, now.Sub(start).Seconds())
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
	return nil
}
