// Package loader reads product documents from YAML or JSON files.
package loader

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/abgdnv/catalogue/internal/catalogue/service"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// LoadBatch reads one product document. JSON files are accepted since the
// YAML parser reads JSON too. Decoding is strict: unknown keys, a non-string
// id and non-integer numbers are errors, so `id: 1` and `id: "1"` never
// collapse into the same product.
func LoadBatch(path string) (service.BatchDto, error) {
	var batch service.BatchDto

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return batch, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}
	conf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:  wholeNumberHook,
			ErrorUnused: true,
			Result:      &batch,
		},
	}
	if err := k.UnmarshalWithConf("", &batch, conf); err != nil {
		return batch, fmt.Errorf("failed to decode batch file %s: %w", path, err)
	}
	return batch, nil
}

// wholeNumberHook refuses to truncate a fractional number into an int field.
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("expected a whole number, got %v", f)
	}
	return int(f), nil
}

// LoadBatches reads the given files with at most concurrency files in flight.
// Results keep the order of paths. The first failure cancels the files not yet started.
func LoadBatches(ctx context.Context, paths []string, concurrency int) ([]service.BatchDto, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	batches := make([]service.BatchDto, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			batch, err := LoadBatch(path)
			if err != nil {
				return err
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batches, nil
}
