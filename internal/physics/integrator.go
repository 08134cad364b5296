package physics

import "github.com/go-gl/mathgl/mgl64"

// Step advances s by dt seconds under gravity and the player's intents.
//
// The jump is taken before any motion, and only from the ground. Opposite
// directions are applied independently and cancel by superposition. Step
// never sets OnGround; Resolve decides that after the move.
func Step(s Sphere, in Intents, dt float64, p Params) Sphere {
	if in.Jump && s.OnGround {
		s.VelocityY = p.JumpForce
		s.OnGround = false
	}

	move := p.Speed * dt
	var dx, dz float64
	if in.Forward {
		dz += move
		s.RotationX += move / s.Radius
	}
	if in.Back {
		dz -= move
		s.RotationX -= move / s.Radius
	}
	if in.Left {
		dx += move
		s.RotationZ += move / s.Radius
	}
	if in.Right {
		dx -= move
		s.RotationZ -= move / s.Radius
	}

	s.VelocityY -= p.Gravity * dt
	s.Position = s.Position.Add(mgl64.Vec3{dx, s.VelocityY * dt, dz})

	return s
}
