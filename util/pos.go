package util

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/game"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// CubePosFromProtocolBlockPos converts a protocol.BlockPos to a cube.Pos.
func CubePosFromProtocolBlockPos(pos protocol.BlockPos) cube.Pos {
	return cube.Pos{int(pos.X()), int(pos.Y()), int(pos.Z())}
}

// ProtocolBlockPosFromCubePos converts a cube.Pos to a protocol.BlockPos.
func ProtocolBlockPosFromCubePos(pos cube.Pos) protocol.BlockPos {
	return protocol.BlockPos{int32(pos[0]), int32(pos[1]), int32(pos[2])}
}

// BlockPosOf returns the position of the block the point passed is in.
func BlockPosOf(vec mgl32.Vec3) cube.Pos {
	return cube.PosFromVec3(game.Vec32To64(vec))
}

// BlockCentre returns the centre of the block at the position passed.
func BlockCentre(pos cube.Pos) mgl32.Vec3 {
	return game.Vec64To32(pos.Vec3Centre())
}
