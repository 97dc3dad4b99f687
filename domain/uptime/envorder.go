package uptime

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tier groups environments for row ordering.
type Tier int

const (
	TierNonProd      Tier = iota // names not starting with "prod", alphabetical
	TierProdNumbered             // "prod", "prod0", "prodN", numeric
	TierProdOther                // any other "prod..." name, alphabetical
)

const prodPrefix = "prod"

var prodNumbered = regexp.MustCompile(`^prod(\d*)$`)

// Rank is the ordering key of one environment name: Tier first, then either
// Number (TierProdNumbered) or Name.
type Rank struct {
	Tier   Tier
	Number string // decimal digits without leading zeros, only for TierProdNumbered
	Name   string
}

// EnvRank classifies an environment name. "prod0" ranks as 0 and "prod" as 1,
// so prod0 comes before prod.
func EnvRank(env string) Rank {
	if !strings.HasPrefix(env, prodPrefix) {
		return Rank{Tier: TierNonProd, Name: env}
	}
	m := prodNumbered.FindStringSubmatch(env)
	if m == nil {
		return Rank{Tier: TierProdOther, Name: env}
	}
	switch {
	case env == "prod0":
		return Rank{Tier: TierProdNumbered, Number: "0", Name: env}
	case m[1] == "":
		return Rank{Tier: TierProdNumbered, Number: "1", Name: env}
	}
	digits := strings.TrimLeft(m[1], "0")
	if digits == "" {
		digits = "0"
	}
	return Rank{Tier: TierProdNumbered, Number: digits, Name: env}
}

// envSorter compares ranks. Alphabetical tiers use root-locale collation;
// a Collator is not safe for concurrent use, so each sort builds its own.
type envSorter struct {
	coll *collate.Collator
}

func newEnvSorter() *envSorter {
	return &envSorter{coll: collate.New(language.Und)}
}

func (s *envSorter) compare(a, b Rank) int {
	if a.Tier != b.Tier {
		return cmpInt(int(a.Tier), int(b.Tier))
	}
	if a.Tier == TierProdNumbered {
		if c := compareDigits(a.Number, b.Number); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	}
	if c := s.coll.CompareString(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// compareDigits compares two normalized decimal strings numerically without
// overflowing on long suffixes.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		return cmpInt(len(a), len(b))
	}
	return strings.Compare(a, b)
}

// SortEnvironments returns envs in heatmap row order: non-prod alphabetically,
// then prod0, prod, prod2, prod10..., then remaining prod-prefixed names alphabetically.
func SortEnvironments(envs []string) []string {
	out := append([]string{}, envs...)
	ranks := make(map[string]Rank, len(out))
	for _, e := range out {
		ranks[e] = EnvRank(e)
	}
	s := newEnvSorter()
	sort.Slice(out, func(i, j int) bool { return s.compare(ranks[out[i]], ranks[out[j]]) < 0 })
	return out
}
