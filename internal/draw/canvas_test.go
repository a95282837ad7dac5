package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvasScaling(t *testing.T) {
	// 1280x720 logical onto 128x36 cells: 10 units per column, 10 per sub-pixel row.
	c := NewScaledCanvas(128, 36, 1280, 720)

	c.SetFloat(640, 360)
	if !c.Pixel(64, 36) {
		t.Error("centre pixel not set")
	}
	c.SetFloat(-50, 100)
	c.SetFloat(5000, 100)
	// out of range points are ignored
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawLine(Point{0, 0}, Point{9, 9})
	for i := 0; i < 10; i++ {
		if !c.Pixel(i, i) {
			t.Errorf("pixel (%d,%d) not set on diagonal", i, i)
		}
	}
}

func TestDrawCircleStaysOnRing(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100)
	c.DrawCircle(Point{50, 50}, 20)

	set := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if !c.Pixel(x, y) {
				continue
			}
			set++
			dx, dy := float64(x-50), float64(y-50)
			d2 := dx*dx + dy*dy
			if d2 < 17*17 || d2 > 22*22 {
				t.Fatalf("pixel (%d,%d) off the ring", x, y)
			}
		}
	}
	if set == 0 {
		t.Fatal("circle drew nothing")
	}
	if c.Pixel(50, 50) {
		t.Error("circle filled its centre")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	c.setPixel(0, 0)
	c.setPixel(1, 1)
	c.setPixel(2, 0)
	c.setPixel(2, 1)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	want := "\033[1;1H▀\033[1;2H▄\033[1;3H█"
	if buf.String() != want {
		t.Errorf("Render = %q, want %q", buf.String(), want)
	}

	c.Clear()
	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("empty canvas rendered %q", buf.String())
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.WriteAt(3, 2, "hi")
	cw.WriteString(strings.Repeat("x", 5000))
	if out.Len() != 0 {
		t.Fatal("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[2;3Hhi") {
		t.Errorf("unexpected prefix %q", out.String()[:10])
	}
	if out.Len() != len("\033[2;3Hhi")+5000 {
		t.Errorf("len = %d", out.Len())
	}
}
