package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"territory/game"
)

// ReadPowerUps parses a STATE.DAT record: speed-boost turns, oil-slick turns
// and a 0/1 oil-slick flag.
func ReadPowerUps(r io.Reader) (game.PowerUps, error) {
	t := newTokens(r)
	speed, err := t.number("speed boost turns")
	if err != nil {
		return game.PowerUps{}, err
	}
	oil, err := t.number("oil slick turns")
	if err != nil {
		return game.PowerUps{}, err
	}
	has, err := t.number("oil slick flag")
	if err != nil {
		return game.PowerUps{}, err
	}
	if has != 0 && has != 1 {
		return game.PowerUps{}, fmt.Errorf("%w: oil slick flag is %d", ErrMalformedInput, has)
	}
	return game.PowerUps{SpeedBoostTurns: speed, OilSlickTurns: oil, HasOilSlick: has == 1}, nil
}

// LoadPowerUps reads the persisted counters from path. The bot must still move
// when the file is absent or damaged, so any failure yields no power-up.
func LoadPowerUps(path string) game.PowerUps {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return game.PowerUps{}
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to open power-up state")
		return game.PowerUps{}
	}
	defer f.Close()

	p, err := ReadPowerUps(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ignoring malformed power-up state")
		return game.PowerUps{}
	}
	return p
}

func WritePowerUps(w io.Writer, p game.PowerUps) error {
	has := 0
	if p.HasOilSlick {
		has = 1
	}
	if _, err := fmt.Fprintf(w, "%d\n%d\n%d\n", p.SpeedBoostTurns, p.OilSlickTurns, has); err != nil {
		return fmt.Errorf("failed to write power-up state: %w", err)
	}
	return nil
}

func SavePowerUps(path string, p game.PowerUps) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create power-up state file: %w", err)
	}
	defer f.Close()
	return WritePowerUps(f, p)
}
