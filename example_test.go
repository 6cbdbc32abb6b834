package modmap_test

import (
	"fmt"
	"log"

	"github.com/Gobd/modmap"
	"github.com/Gobd/modmap/modifiers"
)

func ExampleDefine() {
	increment := func(v any) any {
		if n, ok := v.(int); ok {
			return n + 1
		}
		return v
	}

	typ, err := modmap.Define(modmap.Config[string, any]{
		KeyModifiers:   modmap.Modifier[string](modifiers.Casefold),
		ValueModifiers: modmap.Modifier[any](increment),
	})
	if err != nil {
		log.Fatal(err)
	}

	m, err := typ.From(
		map[string]any{"lower": 1, "UPPER": 2},
		modmap.Pair[string, any]{Key: "CamelCase", Value: 3},
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, key := range []string{"lower", "upper", "camelcase"} {
		v, err := m.Get(key)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s=%v\n", key, v)
	}
	// Output:
	// lower=2
	// upper=3
	// camelcase=4
}

func ExampleAsAttrs() {
	typ, err := modmap.Define(modmap.Config[string, string]{
		KeyModifiers: modmap.Modifier[string](modifiers.Lower),
	})
	if err != nil {
		log.Fatal(err)
	}

	attrs := modmap.AsAttrs[string](typ.New())
	if err := attrs.SetAttr("GreetinG", "hello"); err != nil {
		log.Fatal(err)
	}

	v, err := attrs.GetAttr("GREETING")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

	_, err = attrs.GetAttr("missing")
	fmt.Println(err)
	// Output:
	// hello
	// attribute not found: *modmap.Map[string,string] object has no attribute "missing"
}
