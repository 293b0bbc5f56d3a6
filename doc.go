// Package huffman implements Huffman coding over arbitrary comparable symbol
// alphabets.  Encode counts symbol frequencies, builds the Huffman tree,
// derives a codeword for every symbol, and encodes the input; Decode walks
// the tree to recover the input from the bits.
//
// Ties between equal weights are broken by arrival order: leaves arrive in
// order of first appearance in the input, and a merged node is placed after
// every existing node of the same weight.  The first node popped becomes the
// left (0) child.  Encoding the same input therefore always yields the same
// tree, codewords, and bits.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
