// Package huffle implements a self-describing Huffman codec.  The code is
// derived from the symbol frequencies of the input text, and the tree that
// generates it travels alongside the payload, so decoding needs no external
// dictionary.
//
// The pipeline, from text to bytes:
//
//     CountFrequencies → BuildTree → GenerateCodeTable → Encoder.Encode
//     BuildTree → SerializeTree
//     (header, bits) → PackContainer
//
// and back:
//
//     ParseContainer → DeserializeTree → GenerateCodeTable → Decoder.DecodeBits
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffle
