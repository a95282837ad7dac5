package audio

import "testing"

func TestNopIsSink(t *testing.T) {
	var s Sink = Nop{}
	s.SetThrust(true)
	s.Explode()
}
