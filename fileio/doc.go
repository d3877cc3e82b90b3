// Package fileio exposes an IOSystem as the handle-based procedure table
// consumed by the engine collaborator.
//
// The engine cannot hold Go values across its boundary, so every opened
// stream is registered in a resource table and addressed by an opaque
// integer handle. Each stream operation becomes a procedure taking that
// handle:
//
//	procs := fileio.New(sys)
//	h := procs.Open("model.obj", assimp.OpenRead)
//	if h == 0 {
//	    // open failed; nothing to release
//	}
//	n, err := procs.Read(h, buf, int64(len(buf)))
//	procs.CloseStream(h)
//
// Close tears down every stream the engine left open. Tell and FileSize
// follow the invalid-handle contract (-1 and 0) because the engine surface
// has no error channel for them; the remaining procedures fail loudly on
// unknown handles.
package fileio
