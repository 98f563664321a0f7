package motionmetrics

import "fmt"

// Joint identifies a named anatomical landmark.  Values follow the MediaPipe
// Pose 33 landmark convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
type Joint int

const (
	Nose           Joint = 0
	LeftEyeInner   Joint = 1
	LeftEye        Joint = 2
	LeftEyeOuter   Joint = 3
	RightEyeInner  Joint = 4
	RightEye       Joint = 5
	RightEyeOuter  Joint = 6
	LeftEar        Joint = 7
	RightEar       Joint = 8
	MouthLeft      Joint = 9
	MouthRight     Joint = 10
	LeftShoulder   Joint = 11
	RightShoulder  Joint = 12
	LeftElbow      Joint = 13
	RightElbow     Joint = 14
	LeftWrist      Joint = 15
	RightWrist     Joint = 16
	LeftPinky      Joint = 17
	RightPinky     Joint = 18
	LeftIndex      Joint = 19
	RightIndex     Joint = 20
	LeftThumb      Joint = 21
	RightThumb     Joint = 22
	LeftHip        Joint = 23
	RightHip       Joint = 24
	LeftKnee       Joint = 25
	RightKnee      Joint = 26
	LeftAnkle      Joint = 27
	RightAnkle     Joint = 28
	LeftHeel       Joint = 29
	RightHeel      Joint = 30
	LeftFootIndex  Joint = 31
	RightFootIndex Joint = 32
	// NumJoints is the number of landmarks in the schema
	NumJoints = 33
)

// jointNames maps each Joint value to its schema name
var jointNames = map[Joint]string{
	Nose:           "nose",
	LeftEyeInner:   "left_eye_inner",
	LeftEye:        "left_eye",
	LeftEyeOuter:   "left_eye_outer",
	RightEyeInner:  "right_eye_inner",
	RightEye:       "right_eye",
	RightEyeOuter:  "right_eye_outer",
	LeftEar:        "left_ear",
	RightEar:       "right_ear",
	MouthLeft:      "mouth_left",
	MouthRight:     "mouth_right",
	LeftShoulder:   "left_shoulder",
	RightShoulder:  "right_shoulder",
	LeftElbow:      "left_elbow",
	RightElbow:     "right_elbow",
	LeftWrist:      "left_wrist",
	RightWrist:     "right_wrist",
	LeftPinky:      "left_pinky",
	RightPinky:     "right_pinky",
	LeftIndex:      "left_index",
	RightIndex:     "right_index",
	LeftThumb:      "left_thumb",
	RightThumb:     "right_thumb",
	LeftHip:        "left_hip",
	RightHip:       "right_hip",
	LeftKnee:       "left_knee",
	RightKnee:      "right_knee",
	LeftAnkle:      "left_ankle",
	RightAnkle:     "right_ankle",
	LeftHeel:       "left_heel",
	RightHeel:      "right_heel",
	LeftFootIndex:  "left_foot_index",
	RightFootIndex: "right_foot_index",
}

// String returns the schema name of the joint
func (j Joint) String() string {
	name, ok := jointNames[j]

	if !ok {
		return fmt.Sprintf("joint(%d)", int(j))
	}

	return name
}

// Schema maps named joints onto the index positions the pose estimation
// collaborator emits landmarks in.  It is validated once when created and
// immutable afterwards.
type Schema struct {
	index map[Joint]int
	size  int
}

// MediaPipeSchema returns the Schema for a collaborator emitting landmarks in
// MediaPipe Pose order
func MediaPipeSchema() Schema {

	idx := make(map[Joint]int, NumJoints)

	for j := range jointNames {
		idx[j] = int(j)
	}

	return Schema{index: idx, size: NumJoints}
}

// NewSchema builds a Schema from a map of joint schema names to collaborator
// landmark indices.  All named joints must be present, indices must be unique
// and non-negative.  An error here means the collaborator's landmark layout
// changed shape and processing must not start.
func NewSchema(indexByName map[string]int) (Schema, error) {

	if len(indexByName) != len(jointNames) {
		return Schema{}, fmt.Errorf("landmark schema has %d entries, want %d",
			len(indexByName), len(jointNames))
	}

	nameToJoint := make(map[string]Joint, len(jointNames))

	for j, name := range jointNames {
		nameToJoint[name] = j
	}

	idx := make(map[Joint]int, len(indexByName))
	seen := make(map[int]string, len(indexByName))

	size := 0

	for name, i := range indexByName {

		j, ok := nameToJoint[name]

		if !ok {
			return Schema{}, fmt.Errorf("unknown joint name %q in landmark schema", name)
		}

		if i < 0 {
			return Schema{}, fmt.Errorf("joint %q has negative landmark index %d", name, i)
		}

		if prev, dup := seen[i]; dup {
			return Schema{}, fmt.Errorf("joints %q and %q share landmark index %d", prev, name, i)
		}

		seen[i] = name
		idx[j] = i

		if i+1 > size {
			size = i + 1
		}
	}

	return Schema{index: idx, size: size}, nil
}

// Index returns the collaborator landmark index for the given joint
func (s Schema) Index(j Joint) (int, bool) {
	i, ok := s.index[j]
	return i, ok
}

// Size returns the minimum landmark slice length the schema addresses
func (s Schema) Size() int {
	return s.size
}
