/*
 * doc.go, part of chemimport.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemjson implements the tree of nodes produced by the chemimport
//parsers, and the serialization of the payloads those nodes carry.
//Its planned use is the communication of chemimport with other, independent
//programs, which can be written in languages other than Go, as long as those
//languages implement a way of unserializing JSON data. A whole tree can also be
//sent as a zstd-compressed JSON stream, see Pack and Unpack.
//
//A Node is a parse result, not a document. Nothing in this package modifies a
//Node after it has been built.
package chemjson
