// Package boardingpass decodes the mandatory section of IATA BCBP barcodes
// (the text carried by the PDF417 or Aztec code printed on a boarding pass).
package boardingpass

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinLength is the size of the mandatory unique and first-leg items.
const MinLength = 60

// ErrInvalidBoardingPass is returned for input that is not a BCBP "M" barcode.
var ErrInvalidBoardingPass = errors.New("invalid boarding pass")

// Pass holds the mandatory items of the first leg.
type Pass struct {
	FormatCode      string `json:"formatCode"`
	Legs            int    `json:"legs"`
	PassengerName   string `json:"passengerName"`
	ETicket         bool   `json:"eTicket"`
	PNR             string `json:"pnr"`
	From            string `json:"from"`
	To              string `json:"to"`
	Carrier         string `json:"carrier"`
	FlightNumber    string `json:"flightNumber"`
	JulianDate      int    `json:"julianDate"`
	Compartment     string `json:"compartment"`
	Seat            string `json:"seat"`
	Sequence        string `json:"sequence"`
	PassengerStatus string `json:"passengerStatus"`
}

// field is a fixed-width item of the mandatory section.
type field struct {
	start, end int
}

var (
	fFormat      = field{0, 1}
	fLegs        = field{1, 2}
	fName        = field{2, 22}
	fETicket     = field{22, 23}
	fPNR         = field{23, 30}
	fFrom        = field{30, 33}
	fTo          = field{33, 36}
	fCarrier     = field{36, 39}
	fFlight      = field{39, 44}
	fDate        = field{44, 47}
	fCompartment = field{47, 48}
	fSeat        = field{48, 52}
	fSequence    = field{52, 57}
	fStatus      = field{57, 58}
)

func (f field) of(raw string) string {
	return strings.TrimSpace(raw[f.start:f.end])
}

// Decode parses raw. Trailing conditional items are ignored.
func Decode(raw string) (*Pass, error) {
	if len(raw) < MinLength {
		return nil, fmt.Errorf("%w: %d characters, need at least %d", ErrInvalidBoardingPass, len(raw), MinLength)
	}
	if fFormat.of(raw) != "M" {
		return nil, fmt.Errorf("%w: format code %q", ErrInvalidBoardingPass, raw[:1])
	}

	legs, err := strconv.Atoi(fLegs.of(raw))
	if err != nil || legs < 1 {
		return nil, fmt.Errorf("%w: number of legs %q", ErrInvalidBoardingPass, raw[1:2])
	}

	julian, err := strconv.Atoi(fDate.of(raw))
	if err != nil || julian < 1 || julian > 366 {
		return nil, fmt.Errorf("%w: date of flight %q", ErrInvalidBoardingPass, raw[fDate.start:fDate.end])
	}

	return &Pass{
		FormatCode:      "M",
		Legs:            legs,
		PassengerName:   fName.of(raw),
		ETicket:         fETicket.of(raw) == "E",
		PNR:             fPNR.of(raw),
		From:            fFrom.of(raw),
		To:              fTo.of(raw),
		Carrier:         fCarrier.of(raw),
		FlightNumber:    trimLeadingZeros(fFlight.of(raw)),
		JulianDate:      julian,
		Compartment:     fCompartment.of(raw),
		Seat:            trimLeadingZeros(fSeat.of(raw)),
		Sequence:        trimLeadingZeros(fSequence.of(raw)),
		PassengerStatus: fStatus.of(raw),
	}, nil
}

// FlightCode joins carrier and flight number, e.g. "VJ84".
func (p *Pass) FlightCode() string {
	return p.Carrier + p.FlightNumber
}

// FlightDate resolves the day-of-year in the given year.
func (p *Pass) FlightDate(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, p.JulianDate-1)
}

// trimLeadingZeros turns "0084" into "84" and "012A" into "12A".
func trimLeadingZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		return "0"
	}
	return t
}
