package main

// Default values for command-line flags
const (
	defaultRows = 11
	defaultKeys = "0:0:linear,1:2,3:1,4:0:linear"
)

// Table layout
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
	tabPadChar  = ' '
	tabFlags    = 0
)

// Coefficient list parsing
const (
	coefficientSeparator = ","
	minCoefficients      = 2
	maxCoefficients      = 5
)
