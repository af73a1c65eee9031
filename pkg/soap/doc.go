// Package soap implements the wire envelope codec: it serializes typed
// request messages into envelope documents and decodes reply envelopes back
// into typed values.
//
// Payload serialization is schema-driven. Every message type declares an
// ordered field table (see Register); the encoder walks the table and the
// tolerant decoder uses it to recover fields by element local-name. Decoding
// is two-path: a direct structural decode via encoding/xml struct tags,
// guarded by a coherence check against the raw node tree, with a tolerant
// field-by-field fallback that defaults anything absent or unparseable. The
// two stacks on either end of the wire do not always agree on namespace and
// wrapper conventions; the fallback keeps a call progressing when the direct
// path misparses.
package soap
