package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/orrery/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file. Faces with more than three
// vertices are triangulated by fan decomposition from the first
// vertex. Missing normals are computed by smooth averaging.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))

	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		uvs       []math3d.Vec2
	)

	// OBJ indexes position/uv/normal independently; the mesh wants one
	// vertex per unique triple.
	seen := make(map[[3]int]int)
	hasNormals := false

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, v)

		case "vn":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, v)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord: want 2 components", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: texcoord parse error", lineNo)
			}
			uvs = append(uvs, math3d.V2(u, v))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with fewer than 3 vertices", lineNo)
			}

			corners := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				triple, err := parseFaceRef(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx, ok := seen[triple]
				if !ok {
					idx = len(mesh.Vertices)
					seen[triple] = idx
					mv := MeshVertex{Position: positions[triple[0]]}
					if triple[1] >= 0 {
						mv.UV = uvs[triple[1]]
					}
					if triple[2] >= 0 {
						mv.Normal = normals[triple[2]]
						hasNormals = true
					}
					mesh.Vertices = append(mesh.Vertices, mv)
				}
				corners = append(corners, idx)
			}

			// Fan decomposition from the first corner.
			for i := 1; i+1 < len(corners); i++ {
				mesh.Faces = append(mesh.Faces, [3]int{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("obj %s: no faces", path)
	}

	if !hasNormals {
		mesh.CalculateSmoothNormals()
	}

	return mesh, nil
}

// parseFaceRef parses one face corner reference (v, v/vt, v//vn, or
// v/vt/vn) into zero-based indices; absent indices are -1. OBJ indices
// are 1-based, with negatives counting back from the current end.
func parseFaceRef(ref string, nPos, nUV, nNorm int) ([3]int, error) {
	out := [3]int{-1, -1, -1}
	counts := [3]int{nPos, nUV, nNorm}

	for i, part := range strings.SplitN(ref, "/", 3) {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return out, fmt.Errorf("face index %q: %w", part, err)
		}
		if n < 0 {
			n = counts[i] + n
		} else {
			n--
		}
		if n < 0 || n >= counts[i] {
			return out, fmt.Errorf("face index %q out of range", part)
		}
		out[i] = n
	}
	if out[0] < 0 {
		return out, fmt.Errorf("face reference %q has no position index", ref)
	}
	return out, nil
}

func parseFloats3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Zero3(), fmt.Errorf("want 3 components, got %d", len(fields))
	}
	var out [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Zero3(), err
		}
		out[i] = v
	}
	return math3d.V3(out[0], out[1], out[2]), nil
}
