package hedra

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ reads a mesh from OBJ-format text. Only `v x y z` and `f i1 i2 ...` lines are
// honored; `#` comments and blank lines are skipped, `/texcoord/normal` suffixes on face
// indices are ignored, and malformed lines, out-of-range indices, and faces left with
// fewer than 3 vertices are silently dropped (the loader is best-effort).
func LoadOBJ(r io.Reader) (*Mesh, error) {

	mesh := NewMesh()
	var vertices []*Vertex
	var faces [][]*Vertex

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)

		switch parts[0] {

		case "v":
			if len(parts) < 4 {
				continue
			}
			x, errX := strconv.ParseFloat(parts[1], 64)
			y, errY := strconv.ParseFloat(parts[2], 64)
			z, errZ := strconv.ParseFloat(parts[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				continue
			}
			vertices = append(vertices, mesh.AddVertex(NewVector(x, y, z)))

		case "f":
			var loop []*Vertex
			for _, part := range parts[1:] {
				// 1-based indices, possibly in v/vt/vn form.
				indexText := part
				if slash := strings.IndexByte(part, '/'); slash >= 0 {
					indexText = part[:slash]
				}
				index, err := strconv.Atoi(indexText)
				if err != nil {
					continue
				}
				index--
				if index >= 0 && index < len(vertices) {
					loop = append(loop, vertices[index])
				}
			}
			if len(loop) >= 3 {
				faces = append(faces, loop)
			}

		}

	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	mesh.BuildConnectivity(faces)

	return mesh, nil

}

// LoadOBJFile reads a mesh from the OBJ file at the given path.
func LoadOBJFile(path string) (*Mesh, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer file.Close()

	return LoadOBJ(file)

}

// ExportOBJ writes the Mesh as OBJ-format text: one `v` line per non-deleted Vertex with
// 6-decimal coordinates, then one `f` line per non-deleted, non-boundary Face, with
// vertices re-indexed contiguously from 1.
func (mesh *Mesh) ExportOBJ(w io.Writer) error {

	bw := bufio.NewWriter(w)

	vertexIndex := map[*Vertex]int{}
	index := 1
	for _, v := range mesh.vertices {
		if v.deleted {
			continue
		}
		if _, err := fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.Position.X, v.Position.Y, v.Position.Z); err != nil {
			return fmt.Errorf("writing OBJ vertex: %w", err)
		}
		vertexIndex[v] = index
		index++
	}

	if _, err := fmt.Fprintln(bw); err != nil {
		return fmt.Errorf("writing OBJ data: %w", err)
	}

	for _, f := range mesh.faces {

		if f.deleted || f.boundary {
			continue
		}

		vertices := f.Vertices()
		if len(vertices) < 3 {
			continue
		}

		line := strings.Builder{}
		line.WriteByte('f')
		valid := true
		for _, v := range vertices {
			i, ok := vertexIndex[v]
			if !ok {
				valid = false
				break
			}
			line.WriteString(" " + strconv.Itoa(i))
		}
		if !valid {
			continue
		}

		if _, err := fmt.Fprintln(bw, line.String()); err != nil {
			return fmt.Errorf("writing OBJ face: %w", err)
		}

	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing OBJ data: %w", err)
	}

	return nil

}

// ExportOBJFile writes the Mesh as an OBJ file at the given path.
func (mesh *Mesh) ExportOBJFile(path string) error {

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}

	if err := mesh.ExportOBJ(file); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing OBJ file: %w", err)
	}

	return nil

}
