package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"vista/internal/app"
	"vista/internal/core"
	"vista/internal/preview"
	"vista/internal/scene"
)

type job struct {
	rain float64
	time float64
}

func (j job) String() string {
	return fmt.Sprintf("rain=%.2f t=%.1f", j.rain, j.time)
}

type frameStats struct {
	job       job
	coverage  map[scene.HitKind]int
	luminance float64
	path      string
	elapsed   time.Duration
	err       error
}

func main() {
	rains := flag.String("rain", "0,0.25,0.5,0.75,1", "comma-separated precipitation values")
	times := flag.String("times", "0,15,30", "comma-separated scene times in seconds")
	width := flag.Int("width", 160, "frame width")
	height := flag.Int("height", 90, "frame height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	outDir := flag.String("out", "", "directory for PNG frames (empty = statistics only)")
	preset := flag.String("preset", scene.DefaultPreset, "scene preset")
	var overrides app.Overrides
	flag.Var(&overrides, "set", "scene override in key=value form (repeatable)")
	flag.Parse()

	cfg := app.NewConfig()
	cfg.Preset = *preset
	cfg.Set = overrides
	base, err := cfg.Scene()
	if err != nil {
		log.Fatal(err)
	}
	if err := base.Apply(map[string]string{"width": strconv.Itoa(*width), "height": strconv.Itoa(*height)}); err != nil {
		log.Fatal(err)
	}
	rainValues, err := parseList(*rains)
	if err != nil {
		log.Fatalf("-rain: %v", err)
	}
	timeValues, err := parseList(*times)
	if err != nil {
		log.Fatalf("-times: %v", err)
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatal(err)
		}
	}
	if *workers <= 0 {
		*workers = 1
	}

	var jobsList []job
	for _, r := range rainValues {
		for _, t := range timeValues {
			jobsList = append(jobsList, job{rain: r, time: t})
		}
	}

	fmt.Printf("Sweeping %d frames (%d workers, %dx%d)\n", len(jobsList), *workers, base.Width, base.Height)

	jobs := make(chan job)
	results := make(chan frameStats)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- renderJob(context.Background(), base, j, *outDir)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobsList {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var all []frameStats
	failed := 0
	for res := range results {
		if res.err != nil {
			failed++
			fmt.Printf("%s failed: %v\n", res.job, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].job.rain != all[j].job.rain {
			return all[i].job.rain < all[j].job.rain
		}
		return all[i].job.time < all[j].job.time
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%s sky=%.1f%% mountain=%.1f%% ground=%.1f%% luma=%.3f render=%s%s\n",
			res.job,
			percent(res.coverage[scene.HitSky], base),
			percent(res.coverage[scene.HitMountain], base),
			percent(res.coverage[scene.HitGround], base),
			res.luminance, res.elapsed.Round(time.Millisecond), pathSuffix(res.path))
	}
	if failed > 0 {
		log.Fatalf("%d frames failed", failed)
	}
}

// renderJob renders one grid cell single-threaded; the sweep parallelizes
// across cells instead.
func renderJob(ctx context.Context, base scene.Config, j job, outDir string) frameStats {
	sc := base
	sc.Time = j.time
	sc.Precipitation = j.rain

	ctrl := scene.NewController(sc, 1)
	eval := scene.NewEvaluator(1)
	eval.Compositor.FOV = sc.FOV

	start := time.Now()
	frame := core.NewFrame(sc.Width, sc.Height)
	p := ctrl.Params(frame.Size())
	if err := eval.Render(ctx, p, frame); err != nil {
		return frameStats{job: j, err: err}
	}
	res := frameStats{
		job:       j,
		coverage:  eval.Compositor.Coverage(p),
		luminance: meanLuminance(frame),
		elapsed:   time.Since(start),
	}
	if outDir == "" {
		return res
	}
	data, err := preview.EncodeFrame(frame)
	if err != nil {
		res.err = err
		return res
	}
	res.path = filepath.Join(outDir, fmt.Sprintf("vista_rain%03d_t%06.1f.png", int(j.rain*100+0.5), j.time))
	if err := os.WriteFile(res.path, data, 0o644); err != nil {
		res.err = err
	}
	return res
}

// meanLuminance averages Rec. 709 luma over the frame, in [0, 1].
func meanLuminance(f *core.Frame) float64 {
	pix := f.Pix()
	n := len(pix) / 4
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < len(pix); i += 4 {
		sum += 0.2126*float64(pix[i]) + 0.7152*float64(pix[i+1]) + 0.0722*float64(pix[i+2])
	}
	return sum / float64(n) / 255
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func percent(n int, sc scene.Config) float64 {
	total := sc.Width * sc.Height
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func pathSuffix(path string) string {
	if path == "" {
		return ""
	}
	return " -> " + path
}
