package led

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/devices/v3/screen1d"
	"periph.io/x/host/v3"
)

// DefaultFreq is the NRZ bit clock used when none is configured.
const DefaultFreq = 2500 * physic.KiloHertz

type strip interface {
	Write(pixels []byte) (int, error)
	Halt() error
}

// NRZ drives a WS281x chain through periph's nrzled encoder.
type NRZ struct {
	mu      sync.Mutex
	dev     strip
	closer  io.Closer
	count   int
	order   string
	Console bool
}

// NewNRZ opens the named SPI port (empty for the first one). Without an SPI
// port the frames are printed at the console instead.
func NewNRZ(port string, count int, freq physic.Frequency, order string) (*NRZ, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	p, err := spireg.Open(port)
	if err != nil {
		log.Warn().Err(err).Str("port", port).Msg("no SPI port; printing at the console")
		return &NRZ{
			dev:     screen1d.New(&screen1d.Opts{X: count}),
			count:   count,
			Console: true,
		}, nil
	}
	d, err := newNRZ(p, count, freq, order)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return d, nil
}

func newNRZ(p spi.Port, count int, freq physic.Frequency, order string) (*NRZ, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	if freq <= 0 {
		freq = DefaultFreq
	}
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{NumPixels: count, Channels: 3, Freq: freq})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	n := &NRZ{dev: d, count: count, order: order}
	if c, ok := p.(io.Closer); ok {
		n.closer = c
	}
	return n, nil
}

func (n *NRZ) Write(rgb []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return fmt.Errorf("nrz closed")
	}
	if len(rgb) != n.count*3 {
		return fmt.Errorf("rgb length %d does not match count %d", len(rgb), n.count)
	}
	buf := rgb
	if !n.Console {
		buf = reorder(rgb, n.order)
	}
	if _, err := n.dev.Write(buf); err != nil {
		return fmt.Errorf("nrz write: %w", err)
	}
	return nil
}

func (n *NRZ) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return nil
	}
	err := n.dev.Halt()
	n.dev = nil
	if n.closer != nil {
		if cerr := n.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func checkOrder(order string) error {
	if len(order) != 3 {
		return fmt.Errorf("color order %q: want three of R, G, B", order)
	}
	var seen [3]bool
	for i := 0; i < 3; i++ {
		k := channel(order[i])
		if k < 0 || seen[k] {
			return fmt.Errorf("color order %q: want each of R, G, B once", order)
		}
		seen[k] = true
	}
	return nil
}

func channel(c byte) int {
	switch c {
	case 'R', 'r':
		return 0
	case 'G', 'g':
		return 1
	case 'B', 'b':
		return 2
	}
	return -1
}

// reorder rearranges RGB triplets so that nrzled, which always emits G,R,B,
// puts the channels on the wire in the strip's own order.
func reorder(rgb []byte, order string) []byte {
	if order == "GRB" || order == "grb" || len(order) != 3 {
		return rgb
	}
	// position on the wire -> input slot nrzled reads it from
	slot := [3]int{1, 0, 2}
	out := make([]byte, len(rgb))
	for i := 0; i+2 < len(rgb); i += 3 {
		for w := 0; w < 3; w++ {
			out[i+slot[w]] = rgb[i+channel(order[w])]
		}
	}
	return out
}
