package structural

// Node is the uniform capability over files and directories.
type Node interface {
	// Name returns the entry name.
	Name() string
	// Size returns the entry size in bytes; directories aggregate children.
	Size() int64
}

// File is a leaf node with a fixed size.
type File struct {
	name string
	size int64
}

// NewFile returns a leaf node.
func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Size returns the file size.
func (f *File) Size() int64 { return f.size }

// Dir is a composite node holding children in insertion order.
type Dir struct {
	name     string
	children []Node
}

// NewDir returns an empty directory node.
func NewDir(name string) *Dir { return &Dir{name: name} }

// Add appends a child, preserving insertion order, and returns the
// directory for chaining.
func (d *Dir) Add(n Node) *Dir {
	d.children = append(d.children, n)
	return d
}

// Name returns the directory name.
func (d *Dir) Name() string { return d.name }

// Size sums the sizes of all children, recursing through nested
// directories.
func (d *Dir) Size() int64 {
	var total int64
	for _, c := range d.children {
		total += c.Size()
	}

	return total
}

// Children returns the direct children in insertion order.
func (d *Dir) Children() []Node { return d.children }
