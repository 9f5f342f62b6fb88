package main

var (
	Version = "0.3.1"
)
