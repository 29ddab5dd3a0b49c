package behavioral

// Peer is a chat participant's capability: receive a relayed message.
type Peer interface {
	Name() string
	Receive(from, msg string)
}

// ChatRoom is the mediator: peers talk to the room, never to each other.
type ChatRoom struct {
	peers []Peer
}

// Register adds a peer to the room, preserving join order.
func (c *ChatRoom) Register(p Peer) { c.peers = append(c.peers, p) }

// Broadcast relays msg from sender to every other registered peer, in
// join order. The sender never receives its own message.
func (c *ChatRoom) Broadcast(sender Peer, msg string) {
	for _, p := range c.peers {
		if p == sender {
			continue
		}
		p.Receive(sender.Name(), msg)
	}
}

// User is a concrete peer that records its inbox.
type User struct {
	UserName string
	Inbox    []string
}

// NewUser returns a peer with an empty inbox.
func NewUser(name string) *User { return &User{UserName: name} }

// Name returns the user's display name.
func (u *User) Name() string { return u.UserName }

// Receive appends the relayed message to the inbox.
func (u *User) Receive(from, msg string) {
	u.Inbox = append(u.Inbox, from+": "+msg)
}
