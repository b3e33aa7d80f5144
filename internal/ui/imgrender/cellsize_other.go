//go:build !unix

package imgrender

func getCellSize() (cellW, cellH int) {
	return defaultCellW, defaultCellH
}
