package engine

// GameObjectRef is a serializable by-UID reference to another scene
// object. A script field of this type gets a pick-from-scene editor in
// the inspector and travels through scene and prefab files as the bare
// UID number.
type GameObjectRef struct {
	UID uint64 // 0 = unset
}

// Get resolves the reference against scene. Nil when the reference is
// unset or the object no longer exists there.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference is set. A set reference can
// still be stale; Get answers whether the object actually exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Nil clears it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
		return
	}
	r.UID = g.UID
}
