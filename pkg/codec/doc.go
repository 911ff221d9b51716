// Package codec turns values into bytes whose order and layout can be relied
// on by a key/value store.
//
// Every codec implements Codec[T]. Encode and Decode handle a single value;
// EncodeTo and DecodeFrom let several codecs share one buffer, which is how
// composite row keys are built without an allocation per field:
//
//	buf := buffer.NewWriteBuffer(64)
//	defer buf.Release()
//	codec.String(true).EncodeTo(buf, "orders")
//	codec.InvertedLong().EncodeTo(buf, createdAt)
//	key := buf.Finish()
//
// # Families
//
// Primitive codecs (Bool, Short, Int, Long, Float, Double, ...) write fixed
// width big-endian bytes that match the storage engine's own encoding.
//
// VarInt, VarLong and the array codecs write zigzag folded base-128 varints.
// Values in [-64, 63] take a single byte:
//
//	codec.Encode(codec.VarInt(), 40002) // 84 F1 04
//
// Order-control codecs change how keys sort. InvertedInt and InvertedLong
// make non-negative values sort descending. Salting prefixes a bucket byte so
// sequential keys land on different partitions.
//
// Schema-evolution codecs keep old data readable. Versioned tags each
// payload with its layout version; Migrating chains several versioned codecs
// and always writes with the newest. CodecOf and ConfiguredCodecOf persist
// the identity of a codec itself through a process-wide registry.
//
// Checksummed, Compressed and MsgPack are value codecs for stored payloads.
//
// # Errors
//
// Decoding failures wrap one of the package sentinels (ErrOutOfData,
// ErrMalformedVarint, ErrUnsupportedVersion, ErrUnknownCodecType,
// ErrUnknownType, ErrChecksum, ErrInvalidValue); test for them with
// errors.Is. Corrupt input never becomes readable by retrying.
//
// # Thread Safety
//
// Codecs are immutable and may be shared between goroutines. Buffers may
// not.
package codec
