package rpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
)

// Service names as seen on the wire.
const (
	ChatServiceName     = "tcpchat.Chat"
	RegistryServiceName = "tcpchat.Registry"
)

// Full method names.
const (
	MethodRegisterNewUser = "/" + RegistryServiceName + "/RegisterNewUser"
	MethodLoginAsUser     = "/" + RegistryServiceName + "/LoginAsUser"

	MethodLookupUser            = "/" + ChatServiceName + "/LookupUser"
	MethodLookupRoom            = "/" + ChatServiceName + "/LookupRoom"
	MethodListRooms             = "/" + ChatServiceName + "/ListRooms"
	MethodListMessages          = "/" + ChatServiceName + "/ListMessages"
	MethodSendMessage           = "/" + ChatServiceName + "/SendMessage"
	MethodCreateRoom            = "/" + ChatServiceName + "/CreateRoom"
	MethodCreateRoomWithUser    = "/" + ChatServiceName + "/CreateRoomWithUser"
	MethodAnalyzeRoom           = "/" + ChatServiceName + "/AnalyzeRoom"
	MethodSubscribeToRoom       = "/" + ChatServiceName + "/SubscribeToRoom"
	MethodSubscribeToUserEvents = "/" + ChatServiceName + "/SubscribeToUserEvents"
)

// RegistryServer is the public account service.
type RegistryServer interface {
	RegisterNewUser(context.Context, *UserCredentials) (*Empty, error)
	LoginAsUser(context.Context, *UserCredentials) (*AuthPair, error)
}

// ChatServer is the authenticated chat service.
type ChatServer interface {
	LookupUser(context.Context, *UserQuery) (*User, error)
	LookupRoom(context.Context, *RoomRef) (*Room, error)
	ListRooms(context.Context, *Empty) (*RoomList, error)
	ListMessages(context.Context, *RoomRef) (*MessageList, error)
	SendMessage(context.Context, *ClientMessage) (*Empty, error)
	CreateRoom(context.Context, *ClientRoom) (*RoomRef, error)
	CreateRoomWithUser(context.Context, *PeerRef) (*RoomRef, error)
	AnalyzeRoom(context.Context, *RoomRef) (*RoomAnalysis, error)
	SubscribeToRoom(*RoomRef, grpc.ServerStreamingServer[RoomEvent]) error
	SubscribeToUserEvents(*Empty, grpc.ServerStreamingServer[UserEvent]) error
}

// RegistryServiceDesc describes tcpchat.Registry for grpc.Server.RegisterService.
var RegistryServiceDesc = grpc.ServiceDesc{
	ServiceName: RegistryServiceName,
	HandlerType: (*RegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodRegisterNewUser, func(srv any, ctx context.Context, in *UserCredentials) (*Empty, error) {
			return srv.(RegistryServer).RegisterNewUser(ctx, in)
		}),
		unary(MethodLoginAsUser, func(srv any, ctx context.Context, in *UserCredentials) (*AuthPair, error) {
			return srv.(RegistryServer).LoginAsUser(ctx, in)
		}),
	},
	Metadata: "tcpchat.proto",
}

// ChatServiceDesc describes tcpchat.Chat for grpc.Server.RegisterService.
var ChatServiceDesc = grpc.ServiceDesc{
	ServiceName: ChatServiceName,
	HandlerType: (*ChatServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodLookupUser, func(srv any, ctx context.Context, in *UserQuery) (*User, error) {
			return srv.(ChatServer).LookupUser(ctx, in)
		}),
		unary(MethodLookupRoom, func(srv any, ctx context.Context, in *RoomRef) (*Room, error) {
			return srv.(ChatServer).LookupRoom(ctx, in)
		}),
		unary(MethodListRooms, func(srv any, ctx context.Context, in *Empty) (*RoomList, error) {
			return srv.(ChatServer).ListRooms(ctx, in)
		}),
		unary(MethodListMessages, func(srv any, ctx context.Context, in *RoomRef) (*MessageList, error) {
			return srv.(ChatServer).ListMessages(ctx, in)
		}),
		unary(MethodSendMessage, func(srv any, ctx context.Context, in *ClientMessage) (*Empty, error) {
			return srv.(ChatServer).SendMessage(ctx, in)
		}),
		unary(MethodCreateRoom, func(srv any, ctx context.Context, in *ClientRoom) (*RoomRef, error) {
			return srv.(ChatServer).CreateRoom(ctx, in)
		}),
		unary(MethodCreateRoomWithUser, func(srv any, ctx context.Context, in *PeerRef) (*RoomRef, error) {
			return srv.(ChatServer).CreateRoomWithUser(ctx, in)
		}),
		unary(MethodAnalyzeRoom, func(srv any, ctx context.Context, in *RoomRef) (*RoomAnalysis, error) {
			return srv.(ChatServer).AnalyzeRoom(ctx, in)
		}),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeToRoom",
			ServerStreams: true,
			Handler: func(srv any, stream grpc.ServerStream) error {
				in := new(RoomRef)
				if err := stream.RecvMsg(in); err != nil {
					return err
				}
				return srv.(ChatServer).SubscribeToRoom(in, &grpc.GenericServerStream[RoomRef, RoomEvent]{ServerStream: stream})
			},
		},
		{
			StreamName:    "SubscribeToUserEvents",
			ServerStreams: true,
			Handler: func(srv any, stream grpc.ServerStream) error {
				in := new(Empty)
				if err := stream.RecvMsg(in); err != nil {
					return err
				}
				return srv.(ChatServer).SubscribeToUserEvents(in, &grpc.GenericServerStream[Empty, UserEvent]{ServerStream: stream})
			},
		},
	},
	Metadata: "tcpchat.proto",
}

// unary builds a MethodDesc in the shape protoc-gen-go-grpc emits.
func unary[Req, Res any](fullMethod string, call func(srv any, ctx context.Context, in *Req) (*Res, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: methodName(fullMethod),
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func methodName(fullMethod string) string {
	return fullMethod[strings.LastIndex(fullMethod, "/")+1:]
}
