package irctext

// CaseMapping maps a nickname or channel name to its canonical
// representation: ASCII letters are lowercased, and the rfc1459 mappings
// also fold '{' '}' '\\' to '[' ']' '|' (and rfc1459 '~' to '^').
type CaseMapping func(string) string

func casemapASCII(name string) string {
	nameBytes := []byte(name)
	for i, r := range nameBytes {
		if 'A' <= r && r <= 'Z' {
			nameBytes[i] = r + 'a' - 'A'
		}
	}
	return string(nameBytes)
}

// casemapRFC1459 of name is the canonical representation of name according
// to the rfc1459 casemapping.
func casemapRFC1459(name string) string {
	nameBytes := []byte(name)
	for i, r := range nameBytes {
		if 'A' <= r && r <= 'Z' {
			nameBytes[i] = r + 'a' - 'A'
		} else if r == '{' {
			nameBytes[i] = '['
		} else if r == '}' {
			nameBytes[i] = ']'
		} else if r == '\\' {
			nameBytes[i] = '|'
		} else if r == '~' {
			nameBytes[i] = '^'
		}
	}
	return string(nameBytes)
}

func casemapRFC1459Strict(name string) string {
	nameBytes := []byte(name)
	for i, r := range nameBytes {
		if 'A' <= r && r <= 'Z' {
			nameBytes[i] = r + 'a' - 'A'
		} else if r == '{' {
			nameBytes[i] = '['
		} else if r == '}' {
			nameBytes[i] = ']'
		} else if r == '\\' {
			nameBytes[i] = '|'
		}
	}
	return string(nameBytes)
}

var (
	CaseMappingASCII         CaseMapping = casemapASCII
	CaseMappingRFC1459       CaseMapping = casemapRFC1459
	CaseMappingRFC1459Strict CaseMapping = casemapRFC1459Strict
)

// ParseCaseMapping returns the casemapping named by a CASEMAPPING ISUPPORT
// value, or nil if the value is unknown. The rfc7613 mapping is folded to
// ASCII; PRECIS-level Unicode folding is out of scope.
func ParseCaseMapping(s string) CaseMapping {
	switch s {
	case "ascii", "rfc7613":
		return CaseMappingASCII
	case "rfc1459":
		return CaseMappingRFC1459
	case "rfc1459-strict":
		return CaseMappingRFC1459Strict
	}
	return nil
}
