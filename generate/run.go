package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	minify "github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gridgen/config"
	"gridgen/css"
	"gridgen/misc"
	"gridgen/state"
)

// Run is the "generate" subcommand action.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no grid definition has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	dst, err := outputPath(src, cmd.Args().Get(1))
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite, env.Watch = cmd.Bool("overwrite"), cmd.Bool("watch")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if env.Watch {
		return watch(ctx, src, dst, log)
	}
	return process(ctx, src, dst, log)
}

// outputPath derives the stylesheet destination from the definition path and
// the (possibly empty) destination argument. A destination without the .css
// extension is treated as a directory.
func outputPath(src, dst string) (string, error) {
	name := config.CleanFileName(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))) + ".css"

	if len(dst) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
		return filepath.Join(wd, name), nil
	}

	dst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Ext(dst), ".css") {
		return dst, nil
	}
	return filepath.Join(dst, name), nil
}

// process runs a single generation pass: definition in, stylesheet (and
// optionally preview page) out.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	buildID := uuid.New().String()

	log.Info("Generation starting", zap.String("from", src), zap.String("build_id", buildID))

	def, err := LoadDefinition(src)
	if err != nil {
		return err
	}
	if err := env.Rpt.StoreCopy(fmt.Sprintf("definition/%s", filepath.Base(src)), src); err != nil {
		log.Warn("Unable to store definition in debug report", zap.Error(err))
	}

	gctx, err := buildContext(&env.Cfg.Generator, def)
	if err != nil {
		return err
	}

	sheet, err := NewBuilder(log).Build(gctx, def)
	if err != nil {
		return fmt.Errorf("unable to build stylesheet from %q: %w", src, err)
	}

	out := &css.Stylesheet{}
	out.AddComment(fmt.Sprintf("generated by %s %s (build %s)", misc.GetAppName(), misc.GetVersion(), buildID))
	out.Append(sheet)

	if def.ExtraStylesheet != "" {
		if err := mergeExtraStylesheet(out, src, def.ExtraStylesheet, log); err != nil {
			return err
		}
	}
	for _, w := range out.Warnings {
		log.Warn("Stylesheet warning", zap.String("warning", w))
	}

	data := []byte(out.String())
	if env.Cfg.Generator.Minify {
		m := minify.New()
		m.AddFunc("text/css", mincss.Minify)
		if data, err = m.Bytes("text/css", data); err != nil {
			return fmt.Errorf("unable to minify stylesheet: %w", err)
		}
	}

	if err := writeOutput(dst, data, env.Overwrite, log); err != nil {
		return err
	}
	env.Rpt.StoreData(fmt.Sprintf("result-%s.css", buildID), data)

	if env.Cfg.Preview.Generate {
		doc := previewToXHTML(env.Cfg.Preview.Title, filepath.Base(dst), gctx, def)
		preview := strings.TrimSuffix(dst, filepath.Ext(dst)) + ".xhtml"
		if err := doc.WriteToFile(preview); err != nil {
			return fmt.Errorf("unable to write preview page: %w", err)
		}
		log.Info("Preview page written", zap.String("file", preview))
	}

	log.Info("Generation completed", zap.String("to", dst), zap.Int("bytes", len(data)))
	return nil
}

// mergeExtraStylesheet parses author supplied CSS and appends it to the
// generated output. The path is taken relative to the definition file.
func mergeExtraStylesheet(out *css.Stylesheet, src, path string, log *zap.Logger) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(src), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read extra stylesheet: %w", err)
	}
	out.Append(css.NewParser(log).Parse(data, path))
	return nil
}

// writeOutput stores generated stylesheet honoring the overwrite setting.
func writeOutput(dst string, data []byte, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(dst); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.WriteFile(dst, data, 0644)
}

// watch regenerates the stylesheet every time the definition file changes,
// until the context is canceled. Authoring errors are logged but do not stop
// watching.
func watch(ctx context.Context, src, dst string, log *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory - editors often replace the file on save, which
	// drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(src)); err != nil {
		return fmt.Errorf("unable to watch %q: %w", filepath.Dir(src), err)
	}

	run := func() {
		if err := process(ctx, src, dst, log); err != nil {
			log.Error("Generation failed", zap.Error(err))
		}
	}
	run()

	// Coalesce rapid event bursts into a single regeneration.
	const debounce = 250 * time.Millisecond
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	log.Info("Watching for changes", zap.String("file", src))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != src || !event.Op.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))
		}
	}
}
