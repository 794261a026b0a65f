package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/ik5/wavstream/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Get(wav) returned false")
	}
	if got != decoder {
		t.Errorf("Get(wav) = %v, want %v", got, decoder)
	}

	src, err := got.Decode(nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("WAV", &mockDecoder{})

	for _, key := range []string{"wav", "WAV", "Wav"} {
		if _, ok := registry.Get(key); !ok {
			t.Errorf("Get(%q) returned false", key)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("mp3", &mockDecoder{})
	registry.Register("mp3", &failingDecoder{})

	d, _ := registry.Get("mp3")
	if _, err := d.Decode(nil); err == nil {
		t.Error("later registration did not replace the earlier one")
	}
}

func TestRegistry_Missing(t *testing.T) {
	t.Parallel()

	if d, ok := NewRegistry().Get("flac"); ok || d != nil {
		t.Errorf("Get(flac) = %v, %v, want nil, false", d, ok)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wav := &mockDecoder{name: "wav"}
	mp3 := &mockDecoder{name: "mp3"}
	registry.Register("wav", wav)
	registry.Register("mp3", mp3)

	tests := []struct {
		contentType string
		want        Decoder
		ok          bool
	}{
		{"audio/wav", wav, true},
		{"audio/x-wav", wav, true},
		{"audio/wave; codecs=1", wav, true},
		{"AUDIO/WAV", wav, true},
		{"audio/mpeg", mp3, true},
		{"audio/ogg", nil, false},
		{"text/plain", nil, false},
		{"", nil, false},
		{"audio/wav; =broken", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()

			got, ok := registry.Lookup(tt.contentType)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Lookup(%q) = %v, %v, want %v, %v", tt.contentType, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(fmt.Sprintf("fmt%d", i), &mockDecoder{})
		}()
		go func() {
			defer wg.Done()
			registry.Get(fmt.Sprintf("fmt%d", i))
		}()
	}
	wg.Wait()

	for i := range 50 {
		if _, ok := registry.Get(fmt.Sprintf("fmt%d", i)); !ok {
			t.Errorf("fmt%d missing after concurrent registration", i)
		}
	}
}
