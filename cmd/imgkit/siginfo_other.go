//go:build !unix

package main

func trapSigInfo() {}
