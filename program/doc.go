// Package program implements the instruction tree and source parser for the
// eight command Brainfuck language.
//
// A Program is an ordered list of Instructions. Six instructions are leaves;
// the loop instruction exclusively owns the nested instructions of its body,
// so every Program is a tree whose depth is the bracket nesting depth of the
// source it was parsed from.
//
// The Parser reads a seekable byte stream one byte at a time. Every byte other
// than the eight command bytes is a comment and is skipped.
package program
