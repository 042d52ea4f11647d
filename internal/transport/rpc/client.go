package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/heartmarshall/tcpchat/internal/transport/rpc/interceptor"
)

// WithCredentials attaches the auth pair to outgoing calls made with ctx.
func WithCredentials(ctx context.Context, pair *AuthPair) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		interceptor.MetadataUserUUID, pair.UserUUID,
		interceptor.MetadataAuthToken, pair.Token,
	)
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func invoke[Res any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Res, error) {
	out := new(Res)
	if err := cc.Invoke(ctx, method, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func serverStream[Req, Res any](ctx context.Context, cc grpc.ClientConnInterface, desc *grpc.StreamDesc, method string, in *Req, opts []grpc.CallOption) (grpc.ServerStreamingClient[Res], error) {
	s, err := cc.NewStream(ctx, desc, method, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Req, Res]{ClientStream: s}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// RegistryClient calls tcpchat.Registry.
type RegistryClient struct {
	cc grpc.ClientConnInterface
}

func NewRegistryClient(cc grpc.ClientConnInterface) *RegistryClient {
	return &RegistryClient{cc: cc}
}

func (c *RegistryClient) RegisterNewUser(ctx context.Context, in *UserCredentials, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodRegisterNewUser, in, opts)
}

func (c *RegistryClient) LoginAsUser(ctx context.Context, in *UserCredentials, opts ...grpc.CallOption) (*AuthPair, error) {
	return invoke[AuthPair](ctx, c.cc, MethodLoginAsUser, in, opts)
}

// ChatClient calls tcpchat.Chat. Use WithCredentials on the context.
type ChatClient struct {
	cc grpc.ClientConnInterface
}

func NewChatClient(cc grpc.ClientConnInterface) *ChatClient {
	return &ChatClient{cc: cc}
}

func (c *ChatClient) LookupUser(ctx context.Context, in *UserQuery, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodLookupUser, in, opts)
}

func (c *ChatClient) LookupRoom(ctx context.Context, in *RoomRef, opts ...grpc.CallOption) (*Room, error) {
	return invoke[Room](ctx, c.cc, MethodLookupRoom, in, opts)
}

func (c *ChatClient) ListRooms(ctx context.Context, opts ...grpc.CallOption) (*RoomList, error) {
	return invoke[RoomList](ctx, c.cc, MethodListRooms, &Empty{}, opts)
}

func (c *ChatClient) ListMessages(ctx context.Context, in *RoomRef, opts ...grpc.CallOption) (*MessageList, error) {
	return invoke[MessageList](ctx, c.cc, MethodListMessages, in, opts)
}

func (c *ChatClient) SendMessage(ctx context.Context, in *ClientMessage, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodSendMessage, in, opts)
}

func (c *ChatClient) CreateRoom(ctx context.Context, in *ClientRoom, opts ...grpc.CallOption) (*RoomRef, error) {
	return invoke[RoomRef](ctx, c.cc, MethodCreateRoom, in, opts)
}

func (c *ChatClient) CreateRoomWithUser(ctx context.Context, in *PeerRef, opts ...grpc.CallOption) (*RoomRef, error) {
	return invoke[RoomRef](ctx, c.cc, MethodCreateRoomWithUser, in, opts)
}

func (c *ChatClient) AnalyzeRoom(ctx context.Context, in *RoomRef, opts ...grpc.CallOption) (*RoomAnalysis, error) {
	return invoke[RoomAnalysis](ctx, c.cc, MethodAnalyzeRoom, in, opts)
}

// SubscribeToRoom opens a room stream. Waiting on Header() guarantees the
// subscription is live before it returns.
func (c *ChatClient) SubscribeToRoom(ctx context.Context, in *RoomRef, opts ...grpc.CallOption) (grpc.ServerStreamingClient[RoomEvent], error) {
	return serverStream[RoomRef, RoomEvent](ctx, c.cc, &ChatServiceDesc.Streams[0], MethodSubscribeToRoom, in, opts)
}

func (c *ChatClient) SubscribeToUserEvents(ctx context.Context, opts ...grpc.CallOption) (grpc.ServerStreamingClient[UserEvent], error) {
	return serverStream[Empty, UserEvent](ctx, c.cc, &ChatServiceDesc.Streams[1], MethodSubscribeToUserEvents, &Empty{}, opts)
}
