// rom_catalog.go - ROM catalog for IntuitionChip

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionChip
License: GPLv3 or later
*/

package main

import (
	"crypto/sha1"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/sha1-hashes.json
var embeddedHashesJSON []byte

//go:embed data/programs.json
var embeddedProgramsJSON []byte

type Program struct {
	/*
		Program is one catalog entry: a published CHIP-8 program and
		the known ROM images of it, keyed by content hash. The schema
		follows the community archive metadata format.
	*/

	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Release     string              `json:"release,omitempty"`
	Authors     []string            `json:"authors,omitempty"`
	Copyright   string              `json:"copyright,omitempty"`
	URLs        []string            `json:"urls,omitempty"`
	Roms        map[string]RomEntry `json:"roms"`
}

type RomEntry struct {
	File          string   `json:"file"`
	Platforms     []string `json:"platforms,omitempty"`
	Tickrate      int      `json:"tickrate,omitempty"`
	Description   string   `json:"description,omitempty"`
	EmbeddedTitle string   `json:"embeddedTitle,omitempty"`
	Release       string   `json:"release,omitempty"`
}

// AuthorLine joins the author list for status display.
func (p *Program) AuthorLine() string {
	return strings.Join(p.Authors, ", ")
}

type RomCatalog struct {
	/*
		RomCatalog resolves a loaded image's SHA-1 to its catalog
		entry. It is immutable after construction; the embedded
		catalog is parsed lazily, once.
	*/

	hashes   map[string]int
	programs []Program
}

// ParseCatalog builds a catalog from the hash-index and program-list
// JSON documents.
func ParseCatalog(hashesJSON, programsJSON []byte) (*RomCatalog, error) {
	var hashes map[string]int
	if err := json.Unmarshal(hashesJSON, &hashes); err != nil {
		return nil, fmt.Errorf("rom catalog: parsing hash index: %w", err)
	}
	var programs []Program
	if err := json.Unmarshal(programsJSON, &programs); err != nil {
		return nil, fmt.Errorf("rom catalog: parsing programs: %w", err)
	}
	return &RomCatalog{hashes: hashes, programs: programs}, nil
}

var (
	embeddedCatalogOnce sync.Once
	embeddedCatalog     *RomCatalog
)

// EmbeddedCatalog returns the catalog shipped in the binary. A
// malformed embed degrades to an empty catalog rather than failing
// the shell; lookup misses are normal.
func EmbeddedCatalog() *RomCatalog {
	embeddedCatalogOnce.Do(func() {
		catalog, err := ParseCatalog(embeddedHashesJSON, embeddedProgramsJSON)
		if err != nil {
			catalog = &RomCatalog{hashes: map[string]int{}}
		}
		embeddedCatalog = catalog
	})
	return embeddedCatalog
}

// imageSHA1 returns the lower-case hex SHA-1 of a program image, the
// catalog's content key.
func imageSHA1(image []byte) string {
	sum := sha1.Sum(image)
	return hex.EncodeToString(sum[:])
}

// Lookup resolves a program image to its catalog entry by content
// hash. The bool result is false for images the catalog does not
// know, which is not an error.
func (c *RomCatalog) Lookup(image []byte) (*Program, *RomEntry, bool) {
	hash := imageSHA1(image)
	idx, ok := c.hashes[hash]
	if !ok || idx < 0 || idx >= len(c.programs) {
		return nil, nil, false
	}
	program := &c.programs[idx]
	if rom, ok := program.Roms[hash]; ok {
		return program, &rom, true
	}
	return program, nil, true
}
