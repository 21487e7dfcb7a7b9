// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/memory/cartridge"
)

// Results of a performance check.
type Results struct {
	Decodes  int
	Bytes    int
	Duration time.Duration
}

func (r Results) String() string {
	secs := r.Duration.Seconds()
	if secs == 0 {
		return "no results"
	}
	return fmt.Sprintf("%.2f decodes/sec (%d decodes in %.2f seconds) %.2f MB/s",
		float64(r.Decodes)/secs, r.Decodes, secs, float64(r.Bytes)/secs/1e6)
}

// Check the performance of the cartridge decoder using the supplied cartridge.
// The cartridge is decoded, from the raw image file, repeatedly for the
// specified duration. Profiling information is created as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, cl *cartridgeloader.Loader, duration string) (Results, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Results{}, fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return Results{}, errors.New("performance: duration must be positive")
	}

	// the first decode will also load the file, which we don't want to time
	cart, err := cartridge.NewCartridge(cl)
	if err != nil {
		return Results{}, fmt.Errorf("performance: %w", err)
	}

	var res Results

	runner := func() error {
		start := time.Now()
		for time.Since(start) < dur {
			_, err := cartridge.NewCartridge(cl)
			if err != nil {
				return err
			}
			res.Decodes++
			res.Bytes += len(cart.Code())
		}
		res.Duration = time.Since(start)
		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return Results{}, fmt.Errorf("performance: %w", err)
	}

	fmt.Fprintln(output, res.String())

	return res, nil
}
