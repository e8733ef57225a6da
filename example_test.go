package pathmatch_test

import (
	"fmt"

	"github.com/kelsny/pathmatch"
)

func ExampleCompile() {
	b := pathmatch.MustCompile("/user/:id")

	path, _ := b.Build(pathmatch.Params{"id": pathmatch.IntValue(123)})
	fmt.Println(path)
	// Output: /user/123
}

func ExampleNewMatcher() {
	m := pathmatch.MustMatcher(pathmatch.Pattern("/files/:path+"))

	r := m.Match("/files/a/b/c")
	fmt.Println(r.Path, r.Params["path"].Values())
	// Output: /files/a/b/c [a b c]
}

func ExampleMatcher_Match_optional() {
	m := pathmatch.MustMatcher(pathmatch.Pattern("/:lang?/about"))

	for _, path := range []string{"/about", "/fr/about", "/fr/contact"} {
		if r := m.Match(path); r != nil {
			fmt.Printf("%s lang=%q\n", path, r.Params["lang"].Value())
		} else {
			fmt.Println(path, "no match")
		}
	}
	// Output:
	// /about lang=""
	// /fr/about lang="fr"
	// /fr/contact no match
}

func ExampleStringify() {
	tokens, _ := pathmatch.Parse("/release/:version(\\d+)")
	fmt.Println(pathmatch.Stringify(tokens))
	// Output: /release/:version(\d+)
}
