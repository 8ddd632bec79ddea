package terminal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// feedAll runs the parser over a byte stream, returning whether a complete
// report was seen and the parsed fields
func feedAll(p *reportParser, data []byte) (bool, int, int) {
	for _, b := range data {
		if p.feed(b) {
			return true, p.row, p.col
		}
	}
	return false, 0, 0
}

func TestReportParser_WellFormed(t *testing.T) {
	var p reportParser
	done, row, col := feedAll(&p, []byte("\x1b[24;80R"))
	require.True(t, done)
	require.Equal(t, 24, row)
	require.Equal(t, 80, col)
}

func TestReportParser_LeadingGarbageDiscarded(t *testing.T) {
	var p reportParser
	done, row, col := feedAll(&p, []byte("abc\x07xyz\x1b[40;120R"))
	require.True(t, done)
	require.Equal(t, 40, row)
	require.Equal(t, 120, col)
}

func TestReportParser_SplitAcrossReads(t *testing.T) {
	var p reportParser

	done, _, _ := feedAll(&p, []byte("\x1b["))
	require.False(t, done)
	done, _, _ = feedAll(&p, []byte("12;"))
	require.False(t, done)
	done, row, col := feedAll(&p, []byte("34R"))
	require.True(t, done)
	require.Equal(t, 12, row)
	require.Equal(t, 34, col)
}

func TestReportParser_MalformedTerminatorRestarts(t *testing.T) {
	var p reportParser

	// 'Q' is not a valid terminator; the partial report is discarded and
	// the following well-formed report parses cleanly
	done, row, col := feedAll(&p, []byte("\x1b[24;80Q\x1b[10;20R"))
	require.True(t, done)
	require.Equal(t, 10, row)
	require.Equal(t, 20, col)
}

func TestReportParser_MissingDigitsRejected(t *testing.T) {
	var p reportParser

	done, _, _ := feedAll(&p, []byte("\x1b[;80R"))
	require.False(t, done)

	p.reset()
	done, _, _ = feedAll(&p, []byte("\x1b[24;R"))
	require.False(t, done)
}

func TestReportParser_EscapeMidSequenceRestarts(t *testing.T) {
	var p reportParser

	// A fresh escape byte inside a report abandons it and begins the next scan
	done, row, col := feedAll(&p, []byte("\x1b[24\x1b[5;7R"))
	require.True(t, done)
	require.Equal(t, 5, row)
	require.Equal(t, 7, col)
}

func TestClampDim(t *testing.T) {
	require.Equal(t, 1, clampDim(0))
	require.Equal(t, 1, clampDim(-3))
	require.Equal(t, 80, clampDim(80))
	require.Equal(t, 1024, clampDim(1024))
	require.Equal(t, 1024, clampDim(9999))
}

// fakeBackend scripts Read responses for session-level query tests
type fakeBackend struct {
	reads   [][]byte
	written []byte
}

func (f *fakeBackend) Init() error { return nil }
func (f *fakeBackend) Fini()       {}
func (f *fakeBackend) Size() (int, int) {
	return 0, 0
}
func (f *fakeBackend) Write(p []byte) error {
	f.written = append(f.written, p...)
	return nil
}
func (f *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	if len(f.reads) == 0 {
		return nil, nil
	}
	data := f.reads[0]
	f.reads = f.reads[1:]
	return data, nil
}

func TestQueryDimensions(t *testing.T) {
	b := &fakeBackend{reads: [][]byte{
		[]byte("\x1b[48;"),
		[]byte("160R"),
	}}
	s := newSessionWith(b)

	w, h, err := s.QueryDimensions()
	require.NoError(t, err)
	require.Equal(t, 160, w)
	require.Equal(t, 48, h)

	// The probe must park the cursor then request the report
	require.Equal(t, "\x1b[9999;9999H\x1b[6n", string(b.written))
}

func TestQueryDimensions_ClampsOversizedReport(t *testing.T) {
	b := &fakeBackend{reads: [][]byte{[]byte("\x1b[9999;9999R")}}
	s := newSessionWith(b)

	w, h, err := s.QueryDimensions()
	require.NoError(t, err)
	require.Equal(t, 1024, w)
	require.Equal(t, 1024, h)
}

func TestQueryDimensions_NoReportIsFatal(t *testing.T) {
	b := &fakeBackend{}
	s := newSessionWith(b)

	_, _, err := s.QueryDimensions()
	require.Error(t, err)
}
