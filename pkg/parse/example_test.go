package parse_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/lifeparse/pkg/parse"
	"github.com/matzehuels/lifeparse/pkg/parse/life105"
	"github.com/matzehuels/lifeparse/pkg/parse/life106"
)

func ExampleLookup() {
	f, err := parse.Lookup("1.05", life105.Format, life106.Format)
	if err != nil {
		panic(err)
	}

	d, err := f.New(nil).Parse(strings.NewReader("#N\n#P 0 -1\n.*.\n..*\n*.*"))
	if err != nil {
		panic(err)
	}

	fmt.Println("format:", f.Name)
	fmt.Println("survival:", d.Survival())
	fmt.Println("birth:", d.Birth())
	fmt.Println("cells:", d.LiveCells())
	// Output:
	// format: life105
	// survival: [2 3]
	// birth: [3]
	// cells: [(1,-1) (2,0) (0,1) (2,1)]
}
