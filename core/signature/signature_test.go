package signature

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleSignature_Usage() {
	sig := New("seq").
		Named("range", Mandatory, Tuple).
		Named("step", Optional, Single).
		Switch("reverse").
		MustBuild()

	fmt.Println(sig.Usage())

	// Output: seq --range <range> <range> [--step <step>] [--reverse]
}

func TestUsage(t *testing.T) {
	cases := map[string]*Signature{
		"where": New("where").Required(Block("condition")).MustBuild(),
		"ls":    New("ls").Optional(Value("path")).Switch("all").MustBuild(),
		"echo":  New("echo").Rest().MustBuild(),
		"kitchen-sink": New("demo").
			Required(Value("src")).
			Required(Block("filter")).
			Optional(Value("dest")).
			Rest().
			Switch("force").
			Named("depth", Optional, Single).
			Named("pair", Mandatory, Tuple).
			Named("body", Optional, BlockShape).
			Named("items", Mandatory, Array).
			MustBuild(),
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	for tn, sig := range cases {
		t.Run(tn, func(t *testing.T) {
			g.Assert(t, "usage-"+tn, []byte(sig.Usage()+"\n"))
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	cases := map[string]struct {
		builder *Builder
		err     string
	}{
		"valid":            {New("ok").Required(Value("a")).Switch("b"), ""},
		"no name":          {New(""), "signature has no name"},
		"duplicate flag":   {New("x").Switch("a").Named("a", Optional, Single), `x: named argument "a" declared twice`},
		"empty flag":       {New("x").Switch(""), "x: named argument has no key"},
		"empty positional": {New("x").Optional(Block("")), "x: positional argument has no name"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			sig, err := tc.builder.Build()
			if tc.err == "" {
				assert.NoError(t, err)
				assert.NotNil(t, sig)
				return
			}

			assert.EqualError(t, err, tc.err)
			assert.Nil(t, sig)
		})
	}

	assert.Panics(t, func() { New("").MustBuild() })
}

func TestBuilder_preservesDeclarationOrder(t *testing.T) {
	sig := New("x").Switch("z").Named("a", Optional, Single).Named("m", Mandatory, Tuple).MustBuild()

	var keys []string
	for _, arg := range sig.Named {
		keys = append(keys, arg.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)

	spec, ok := sig.Lookup("m")
	assert.True(t, ok)
	assert.Equal(t, NamedSpec{Kind: Mandatory, Shape: Tuple}, spec)

	_, ok = sig.Lookup("missing")
	assert.False(t, ok)
}

func TestTable(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Register(New("where").Required(Block("condition")).MustBuild()))
	require.NoError(t, table.Register(New("echo").Rest().MustBuild()))
	require.NoError(t, table.Register(New("cd").Required(Value("path")).MustBuild()))

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"cd", "echo", "where"}, table.Names())

	sig, err := table.Get("echo")
	require.NoError(t, err)
	assert.True(t, sig.RestPositional)

	_, err = table.Get("nope")
	assert.True(t, errors.Is(err, diag.UnknownCommand))
	assert.EqualError(t, err, "nope: command not found")

	assert.EqualError(t, table.Register(New("echo").MustBuild()), `signature "echo" already registered`)
	assert.EqualError(t, table.Register(&Signature{}), "signature has no name")
	assert.EqualError(t, table.Register(nil), "nil signature")
}

func TestTable_concurrentReads(t *testing.T) {
	table := NewTable()
	for i := 0; i < 10; i++ {
		require.NoError(t, table.Register(New(fmt.Sprintf("cmd%d", i)).MustBuild()))
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sig, err := table.Get(fmt.Sprintf("cmd%d", i%10))
			assert.NoError(t, err)
			_, err = sig.Bind(nil, nil)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}

func TestValueShape_String(t *testing.T) {
	assert.Equal(t, "Single", Single.String())
	assert.Equal(t, "Tuple", Tuple.String())
	assert.Equal(t, "Block", BlockShape.String())
	assert.Equal(t, "Array", Array.String())
	assert.Equal(t, "ValueShape(9)", ValueShape(9).String())
	assert.Equal(t, "Optional", Optional.String())
}
