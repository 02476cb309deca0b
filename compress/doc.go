// Package compress provides the compression codecs for WKB column bodies.
//
// A column body is an offset table followed by concatenated WKB records. The
// codecs here compress the whole body at once, after the records have been
// validated and laid out by the column encoder.
//
// Supported algorithms:
//   - None: No compression, readers decode straight from the blob
//   - Zstd: Best ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fastest decompression, moderate ratio
//
// Codecs are selected by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err // errs.ErrInvalidCompression
//	}
//	stored, _ := codec.Compress(body)
//
// # Algorithm Selection Guide
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|-------------------------------------|
// | Archived layers        | Zstd        | Best compression ratio              |
// | Bulk ingestion         | S2          | Balanced speed and compression      |
// | Query-heavy            | LZ4         | Fastest decompression               |
// | Zero-copy reads        | None        | Geometries borrow the blob directly |
//
// Coordinates stored as float64 compress less than text. Expect the largest
// gains on columns with many small records, where headers repeat.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Zstd encoders and
// decoders and LZ4 compressors are pooled internally.
//
// # Error Handling
//
// Unknown compression types fail with errs.ErrInvalidCompression. Corrupted
// input fails with the underlying library error.
package compress
