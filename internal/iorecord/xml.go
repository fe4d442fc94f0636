package iorecord

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// gamesXML is the root of a BoardGameGeek game document:
// <boardgames><boardgame>...</boardgame></boardgames>.
// The name of the root element is not checked.
type gamesXML struct {
	Games []gameXML `xml:"boardgame"`
}

type gameXML struct {
	Error      *errorXML      `xml:"error"`
	Statistics *statisticsXML `xml:"statistics"`
	Mechanics  []string       `xml:"boardgamemechanic"`
}

type errorXML struct {
	Message string `xml:"message,attr"`
}

type statisticsXML struct {
	Ratings *ratingsXML `xml:"ratings"`
}

type ratingsXML struct {
	Average      *string `xml:"average"`
	BayesAverage *string `xml:"bayesaverage"`
}

var (
	errNoGame    = errors.New("no <boardgame> element")
	errNoRatings = errors.New("no <statistics><ratings> element")
	errJunk      = errors.New("junk after document element")
)

// game is the decoded content of a record before classification.
type game struct {
	errored     bool
	errorMsg    string
	rating      float64
	bayesRating float64
	mechanics   []string
}

// decodeGame parses one record document. Ratings are only required when
// the record does not carry an error element. Documents declaring a
// non-UTF-8 encoding are converted, anything but whitespace, comments or
// processing instructions after the root element is rejected.
func decodeGame(r io.Reader) (*game, error) {
	var doc gamesXML
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := checkTrailing(dec); err != nil {
		return nil, err
	}
	if len(doc.Games) == 0 {
		return nil, errNoGame
	}
	g := doc.Games[0]

	if g.Error != nil {
		return &game{errored: true, errorMsg: g.Error.Message}, nil
	}

	if g.Statistics == nil || g.Statistics.Ratings == nil {
		return nil, errNoRatings
	}
	rt := g.Statistics.Ratings

	rating, err := parseRating("average", rt.Average)
	if err != nil {
		return nil, err
	}
	bayes, err := parseRating("bayesaverage", rt.BayesAverage)
	if err != nil {
		return nil, err
	}

	return &game{
		rating:      rating,
		bayesRating: bayes,
		mechanics:   g.Mechanics,
	}, nil
}

// checkTrailing reads the rest of the document after the root element.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("after root element: %w", err)
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				return errJunk
			}
		default:
			return errJunk
		}
	}
}

func parseRating(name string, s *string) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("no <%s> element", name)
	}
	res, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad <%s> value %q: %w", name, *s, err)
	}
	return res, nil
}
