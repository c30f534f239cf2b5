package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorBoardBg
	ColorTileBorder

	ColorTileFill1
	ColorTileFill2
	ColorDigit

	ColorQuoteBg
	ColorQuoteText

	ColorConfetti1
	ColorConfetti2
	ColorConfetti3
	ColorConfetti4

	ColorTableSize
)

func (i ColorTableIndex) String() string {
	switch i {
	case ColorBg:
		return "Bg"
	case ColorBoardBg:
		return "BoardBg"
	case ColorTileBorder:
		return "TileBorder"
	case ColorTileFill1:
		return "TileFill1"
	case ColorTileFill2:
		return "TileFill2"
	case ColorDigit:
		return "Digit"
	case ColorQuoteBg:
		return "QuoteBg"
	case ColorQuoteText:
		return "QuoteText"
	case ColorConfetti1:
		return "Confetti1"
	case ColorConfetti2:
		return "Confetti2"
	case ColorConfetti3:
		return "Confetti3"
	case ColorConfetti4:
		return "Confetti4"
	}
	panic("UNREACHABLE")
}

var defaultColorTable = [ColorTableSize]color.NRGBA{
	ColorBg:      {24, 24, 32, 255},
	ColorBoardBg: {38, 38, 52, 255},

	ColorTileBorder: {120, 130, 160, 255},

	ColorTileFill1: {72, 110, 170, 255},
	ColorTileFill2: {170, 90, 120, 255},
	ColorDigit:     {240, 240, 245, 255},

	ColorQuoteBg:   {38, 38, 52, 255},
	ColorQuoteText: {235, 220, 180, 255},

	ColorConfetti1: {235, 90, 90, 255},
	ColorConfetti2: {90, 200, 120, 255},
	ColorConfetti3: {250, 200, 80, 255},
	ColorConfetti4: {110, 160, 250, 255},
}

var ColorTable = defaultColorTable

// ColorTableToJson dumps the table as a name to css color string map.
func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]string)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = ColorToString(table[i])
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

// ColorTableFromJson parses a name to css color string map. Entries the
// file does not name keep their defaults, unknown names are ignored.
func ColorTableFromJson(tableJson []byte) ([ColorTableSize]color.NRGBA, error) {
	colorTable := defaultColorTable

	var tableMap map[string]string

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]int)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = int(i)
	}

	for k, v := range tableMap {
		index, ok := stringToIndex[k]
		if !ok {
			continue
		}

		clr, err := ParseColorString(v)
		if err != nil {
			return colorTable, fmt.Errorf("color %v: %w", k, err)
		}
		colorTable[index] = clr
	}

	return colorTable, nil
}

func LoadColorTable(path string) error {
	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	table, err := ColorTableFromJson(jsonBytes)
	if err != nil {
		return err
	}

	ColorTable = table
	return nil
}

func SaveColorTable(path string) error {
	jsonBytes, err := ColorTableToJson(ColorTable)
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonBytes, 0664)
}
