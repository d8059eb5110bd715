package mcprotocol

import "io"

// gridStream is the cursor shared by ChunkStream and HeightsStream. It
// counts the elements pulled from a FieldReader and reports when the
// response has been read to its end.
type gridStream struct {
	reader *FieldReader
	index  int
	volume int
	err    error

	// onEnd is called once, with nil when the last element was decoded or
	// with the error that aborted the stream.
	onEnd func(err error)
}

func newGridStream(r *FieldReader, volume int) gridStream {
	return gridStream{reader: r, volume: volume}
}

// begin returns the index of the element about to be decoded and whether it
// is the last one. It returns io.EOF once the stream is exhausted.
func (s *gridStream) begin() (index int, last bool, err error) {
	if s.err != nil {
		return 0, false, s.err
	}
	if s.index >= s.volume {
		return 0, false, io.EOF
	}
	index = s.index
	s.index++
	return index, s.index == s.volume, nil
}

// finish records the outcome of decoding one element.
func (s *gridStream) finish(last bool, err error) error {
	if err != nil {
		s.err = err
		s.notify(err)
		return err
	}
	if last {
		s.notify(nil)
	}
	return nil
}

func (s *gridStream) notify(err error) {
	if s.onEnd != nil {
		s.onEnd(err)
		s.onEnd = nil
	}
}

// Remaining returns the number of elements not yet decoded.
func (s *gridStream) Remaining() int {
	return s.volume - s.index
}

// Done reports whether the whole response has been read.
func (s *gridStream) Done() bool {
	return s.index >= s.volume
}
