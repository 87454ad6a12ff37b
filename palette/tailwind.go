package palette

import (
	_ "embed"
	"sync"

	"github.com/samber/lo"
)

// TailwindName is the name of the built-in Tailwind CSS palette.
const TailwindName = "tailwind"

//go:embed tailwind.json
var tailwindJSON []byte

// Tailwind returns the built-in Tailwind CSS v3 palette. It is decoded on first use
// and shared afterwards.
var Tailwind = sync.OnceValue(func() *Palette {
	return lo.Must(Decode(TailwindName, tailwindJSON))
})
