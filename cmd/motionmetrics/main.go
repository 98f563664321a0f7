/*
motionmetrics runs one measurement pipeline over a pose landmark capture and
prints the result as JSON.

The landmark capture is a JSON lines file holding one frame per line, as
produced by the pose estimation collaborator:

	{"frame": 0, "landmarks": [{"x": 0.51, "y": 0.12, "visibility": 0.99}, ...]}
	{"frame": 1}

A line without landmarks means no subject was found in that frame.

The annotate mode pairs the capture with its source video and writes a copy
with the skeleton drawn onto each frame, for checking a capture against the
footage it came from.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	metrics "github.com/glospot/go-motionmetrics"
	"github.com/glospot/go-motionmetrics/detect"
	"github.com/glospot/go-motionmetrics/render"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// request holds the validated CLI parameters
type request struct {
	Mode         string  `validate:"required,oneof=height reps jump annotate"`
	Landmarks    string  `validate:"required,file"`
	Width        int     `validate:"gt=0"`
	Height       int     `validate:"gt=0"`
	FPS          float64 `validate:"gt=0"`
	JumperName   string  `validate:"required_if=Mode jump"`
	JumperHeight float64 `validate:"required_if=Mode jump,gte=0"`
	Style        string  `validate:"oneof=ground rim"`
	Format       string  `validate:"oneof=standard hd"`
	Video        string  `validate:"required_if=Mode annotate,omitempty,file"`
	Out          string  `validate:"required_if=Mode annotate"`
}

func main() {

	mode := flag.String("mode", "height", "operation to run [height|reps|jump|annotate]")
	landmarks := flag.String("landmarks", "", "pose landmark capture file (JSON lines)")
	width := flag.Int("width", 720, "frame pixel width of the capture")
	height := flag.Int("height", 960, "frame pixel height of the capture")
	fps := flag.Float64("fps", 30, "frame rate of the capture")
	jumperName := flag.String("name", "", "jumper name (jump mode)")
	jumperHeight := flag.Float64("jumper-height", 0, "jumper standing height in inches (jump mode)")
	style := flag.String("style", "ground", "jump style [ground|rim]")
	format := flag.String("format", "standard", "video format [standard|hd]")
	video := flag.String("video", "", "source video of the capture (annotate mode)")
	out := flag.String("out", "", "annotated output video file (annotate mode)")
	verbose := flag.Bool("v", false, "verbose session logging")

	flag.Parse()

	// optional .env carrying threshold overrides
	_ = godotenv.Load()

	req := request{
		Mode:         *mode,
		Landmarks:    *landmarks,
		Width:        *width,
		Height:       *height,
		FPS:          *fps,
		JumperName:   *jumperName,
		JumperHeight: *jumperHeight,
		Style:        *style,
		Format:       *format,
		Video:        *video,
		Out:          *out,
	}

	if err := validator.New().Struct(req); err != nil {
		fmt.Fprintf(os.Stderr, "invalid arguments: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(*verbose)

	frames, err := loadCapture(req.Landmarks)

	if err != nil {
		log.Fatalf("Error loading landmark capture: %v", err)
	}

	result, err := run(context.Background(), req, frames, log)

	if err != nil {
		log.Fatalf("Error processing capture: %v", err)
	}

	payload, err := json.MarshalIndent(result, "", "  ")

	if err != nil {
		log.Fatalf("Error encoding result: %v", err)
	}

	fmt.Println(string(payload))
}

// run dispatches to the processor for the requested mode
func run(ctx context.Context, req request, frames []metrics.FramePose,
	log *logrus.Logger) (any, error) {

	stream := metrics.NewSliceStream(frames)

	switch req.Mode {

	case "height":
		cfg := metrics.DefaultHeightConfig(req.Width, req.Height)
		cfg.Log = log

		if v, ok := envFloat("HEIGHT_SCALE_FACTOR"); ok {
			cfg.Measure.ScaleFactor = v
		}

		return metrics.ProcessHeight(ctx, stream, cfg)

	case "reps":
		cfg := metrics.DefaultRepConfig(req.Width, req.Height)
		cfg.Log = log
		cfg.Rep = repThresholds()

		return metrics.ProcessReps(ctx, stream, cfg)

	case "jump":
		jumpStyle := metrics.GroundBased

		if req.Style == "rim" {
			jumpStyle = metrics.RimBased
		}

		vidFormat := metrics.FormatStandard

		if req.Format == "hd" {
			vidFormat = metrics.FormatHD
		}

		cfg := metrics.DefaultJumpConfig(req.JumperName, req.JumperHeight,
			jumpStyle, vidFormat)
		cfg.Log = log
		cfg.FPS = req.FPS

		return metrics.ProcessJump(ctx, stream, cfg)

	case "annotate":
		return annotate(req, frames, log)
	}

	return nil, fmt.Errorf("unknown mode %q", req.Mode)
}

// annotateResult reports the outcome of writing an annotated video copy
type annotateResult struct {
	FramesWritten int    `json:"frames_written"`
	OutFile       string `json:"out_file"`
}

// annotate writes a copy of the source video with the capture's skeleton and
// a frame index label drawn onto each frame
func annotate(req request, frames []metrics.FramePose,
	log *logrus.Logger) (annotateResult, error) {

	src, err := metrics.OpenVideo(req.Video)

	if err != nil {
		return annotateResult{}, err
	}

	defer src.Close()

	fps := src.FPS()

	if fps <= 0 {
		fps = req.FPS
	}

	writer, err := gocv.VideoWriterFile(req.Out, "mp4v", fps,
		src.Width(), src.Height(), true)

	if err != nil {
		return annotateResult{}, fmt.Errorf("error opening output video: %w", err)
	}

	defer writer.Close()

	adapter := metrics.NewLandmarkAdapter(metrics.AdapterParams{
		Schema: metrics.MediaPipeSchema(),
		Width:  src.Width(),
		Height: src.Height(),
		Stride: 1,
	})

	font := render.DefaultFont()

	img := gocv.NewMat()
	defer img.Close()

	written := 0

	for i := 0; src.Read(&img); i++ {

		if i < len(frames) && frames[i].Landmarks != nil {
			if rec, ok := adapter.Next(frames[i].Index, frames[i].Landmarks); ok {
				render.Skeleton(&img, rec, 2)
			}
		}

		render.Label(&img, fmt.Sprintf("frame %d", i), image.Pt(10, 30), font)

		if err := writer.Write(img); err != nil {
			return annotateResult{}, fmt.Errorf("error writing frame %d: %w", i, err)
		}

		written++
	}

	log.WithFields(logrus.Fields{
		"frames": written,
		"out":    req.Out,
	}).Info("annotated video written")

	return annotateResult{FramesWritten: written, OutFile: req.Out}, nil
}

// loadCapture reads a JSON lines landmark capture into frame poses
func loadCapture(file string) ([]metrics.FramePose, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening capture file: %w", err)
	}

	defer f.Close()

	type captureLine struct {
		Frame     int `json:"frame"`
		Landmarks []struct {
			X          float64 `json:"x"`
			Y          float64 `json:"y"`
			Visibility float64 `json:"visibility"`
		} `json:"landmarks"`
	}

	var frames []metrics.FramePose

	dec := json.NewDecoder(f)

	for dec.More() {

		var line captureLine

		if err := dec.Decode(&line); err != nil {
			return nil, fmt.Errorf("error decoding capture line %d: %w", len(frames), err)
		}

		pose := metrics.FramePose{Index: line.Frame}

		for _, lm := range line.Landmarks {
			pose.Landmarks = append(pose.Landmarks, metrics.Landmark{
				X:          lm.X,
				Y:          lm.Y,
				Visibility: lm.Visibility,
			})
		}

		frames = append(frames, pose)
	}

	return frames, nil
}

// repThresholds returns the hysteresis thresholds with any env overrides
// applied
func repThresholds() detect.RepParams {

	p := detect.DefaultRepParams()

	if v, ok := envFloat("REP_LOW_THRESHOLD"); ok {
		p.LowThreshold = v
	}

	if v, ok := envFloat("REP_HIGH_THRESHOLD"); ok {
		p.HighThreshold = v
	}

	return p
}

// envFloat reads a float environment variable
func envFloat(key string) (float64, bool) {

	s := os.Getenv(key)

	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)

	if err != nil {
		return 0, false
	}

	return v, true
}

// newLogger builds the CLI logger
func newLogger(verbose bool) *logrus.Logger {

	log := logrus.New()
	log.SetOutput(os.Stderr)

	log.SetFormatter(&formatter.Formatter{
		TimestampFormat: "15:04:05.000",
		HideKeys:        false,
		NoColors:        false,
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}
