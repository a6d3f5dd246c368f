package lightning

// Assemble joins branches1[i] with branches2[j] reversed into one path from
// the start root to the end root, dropping the shared meeting point once.
//
// When the fronts never connected the first branch of each side is used,
// however far apart their tips are.
func Assemble(branches1, branches2 []Branch, connected bool, meeting [2]int) Path {
	i, j := 0, 0
	if connected {
		i, j = meeting[0], meeting[1]
	}
	b1, b2 := branches1[i], branches2[j]
	path := make(Path, 0, len(b1)+len(b2)-1)
	path = append(path, b1...)
	for k := len(b2) - 2; k >= 0; k-- {
		path = append(path, b2[k])
	}
	return path
}
