package main

import "github.com/bytesleuth/bytesleuth/cmd/bytesleuth"

func main() { bytesleuth.Execute() }
