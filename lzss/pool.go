package lzss

import "sync"

// encoderPool is a pool of compressor states (window and match tree).
var encoderPool = sync.Pool{
	New: func() any {
		return &encoder{}
	},
}

// acquireEncoder acquires an encoder from the pool, reset for mode.
func acquireEncoder(mode ChecksumMode) *encoder {
	enc := encoderPool.Get().(*encoder)
	enc.reset(mode)
	return enc
}

// releaseEncoder releases an encoder to the pool.
func releaseEncoder(enc *encoder) {
	if enc == nil {
		return
	}

	enc.tree.text = nil
	encoderPool.Put(enc)
}
