package pattern

func init() {
	for name, src := range builtins {
		Register(MustParse(name, src))
	}
}

var builtins = map[string]string{
	"block": `
OO
OO`[1:],
	"beehive": `
.OO.
O..O
.OO.`[1:],
	"blinker": "OOO",
	"toad": `
.OOO
OOO.`[1:],
	"beacon": `
OO..
OO..
..OO
..OO`[1:],
	"glider": `
.O.
..O
OOO`[1:],
	"lwss": `
.O..O
O....
O...O
OOOO.`[1:],
	"r-pentomino": `
.OO
OO.
.O.`[1:],
	"diehard": `
......O.
OO......
.O...OOO`[1:],
	"acorn": `
.O.....
...O...
OO..OOO`[1:],
}
