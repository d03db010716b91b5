package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Frankiness/floor-navigation/geom"
)

// parseVec parses "x,y,z".
func parseVec(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("point %q: want x,y,z", s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("point %q: %w", s, err)
		}
		c[i] = v
	}

	return geom.V(c[0], c[1], c[2]), nil
}

// parseLocation parses "floor:x,y,z".
func parseLocation(s string) (string, geom.Vec3, error) {
	floor, point, ok := strings.Cut(s, ":")
	if !ok || floor == "" {
		return "", geom.Vec3{}, fmt.Errorf("location %q: want floor:x,y,z", s)
	}
	p, err := parseVec(point)
	if err != nil {
		return "", geom.Vec3{}, err
	}

	return floor, p, nil
}
