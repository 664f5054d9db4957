package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/tsujio/game-star-raid/shooter"
)

const (
	envSeed         = "GAME_RAND_SEED"
	envScale        = "GAME_SCALE"
	envMute         = "GAME_MUTE"
	envMaxBullets   = "GAME_MAX_BULLETS"
	envMaxEnemies   = "GAME_MAX_ENEMIES"
	envMaxParticles = "GAME_MAX_PARTICLES"
	envTUIFPS       = "GAME_TUI_FPS"
)

// Config is the runtime configuration shared by every host.
type Config struct {
	// Seed for the match RNG. Zero picks a time based seed.
	Seed   int64
	Scale  float64
	Mute   bool
	TUIFPS int
	Limits shooter.Limits

	// Files lists the env files that were found and read.
	Files []string
}

func defaults() *Config {
	return &Config{
		Scale:  1,
		TUIFPS: 30,
		Limits: shooter.DefaultParams().Limits,
	}
}

// Load reads the given env files (".env" when none are given) and then the
// process environment. Process variables win over file entries and missing
// files are skipped.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	c := defaults()
	vars := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		for k, v := range m {
			vars[k] = v
		}
		c.Files = append(c.Files, f)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	if err := c.apply(lookup); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	var err error
	if c.Seed, err = parse(lookup, envSeed, c.Seed, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}); err != nil {
		return err
	}
	if c.Scale, err = parse(lookup, envScale, c.Scale, func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && v <= 0 {
			return 0, fmt.Errorf("must be positive")
		}
		return v, err
	}); err != nil {
		return err
	}
	if c.Mute, err = parse(lookup, envMute, c.Mute, strconv.ParseBool); err != nil {
		return err
	}
	if c.TUIFPS, err = parse(lookup, envTUIFPS, c.TUIFPS, positiveInt); err != nil {
		return err
	}
	if c.Limits.Bullets, err = parse(lookup, envMaxBullets, c.Limits.Bullets, limit); err != nil {
		return err
	}
	if c.Limits.Enemies, err = parse(lookup, envMaxEnemies, c.Limits.Enemies, limit); err != nil {
		return err
	}
	if c.Limits.Particles, err = parse(lookup, envMaxParticles, c.Limits.Particles, limit); err != nil {
		return err
	}
	return nil
}

func parse[T any](lookup func(string) (string, bool), key string, def T, conv func(string) (T, error)) (T, error) {
	s, ok := lookup(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := conv(s)
	if err != nil {
		return def, fmt.Errorf("invalid %s=%q: %w", key, s, err)
	}
	return v, nil
}

func positiveInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err == nil && v <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return v, err
}

// limit accepts zero for an unbounded store.
func limit(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err == nil && v < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return v, err
}

// Params returns the arena parameters with the configured limits.
func (c *Config) Params() shooter.Params {
	p := shooter.DefaultParams()
	p.Limits = c.Limits
	return p
}

// Random returns the match RNG.
func (c *Config) Random() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
