// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		want  string
	}{
		{
			name:  "Write byte slice",
			setup: func(buf Buffer) { buf.Write([]byte("hello")) },
			want:  "hello",
		},
		{
			name:  "WriteString",
			setup: func(buf Buffer) { buf.WriteString("Vendor: AWS\n") },
			want:  "Vendor: AWS\n",
		},
		{
			name:  "WriteByte",
			setup: func(buf Buffer) { buf.WriteByte('\n') },
			want:  "\n",
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.Write([]byte("Cost: "))
				buf.WriteString("$12.5")
				buf.WriteByte(' ')
				buf.WriteString("USD")
			},
			want: "Cost: $12.5 USD",
		},
		{
			name: "ReadFrom",
			setup: func(buf Buffer) {
				buf.ReadFrom(strings.NewReader(`{"Data":{}}`))
			},
			want: `{"Data":{}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, []byte(tt.want), buf.Bytes())
			assert.Equal(t, len(tt.want), buf.Len())
		})
	}
}

func TestBufferReset(t *testing.T) {
	buf := Default.Get()
	buf.WriteString("stale")
	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	Default.Put(buf)

	again := Default.Get()
	defer Default.Put(again)
	assert.Empty(t, again.String(), "pooled buffer must come back empty")
}

// foreignBuffer satisfies Buffer but is not backed by bytebufferpool.
type foreignBuffer struct{ bytes.Buffer }

func TestPoolPutForeignBuffer(t *testing.T) {
	require.NotPanics(t, func() {
		Default.Put(&foreignBuffer{})
	})
}

func TestPoolConcurrentAccess(t *testing.T) {
	const workers = 32

	var wg sync.WaitGroup
	results := make([]string, workers)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()
			buf.WriteString(strings.Repeat("x", i+1))
			results[i] = buf.String()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		assert.Len(t, r, i+1)
	}
}
